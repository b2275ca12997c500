package storage

import (
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the recorded score history.
type Summary struct {
	Games  int
	Wins   int
	Best   int
	Mean   float64
	StdDev float64
}

// Summarize computes aggregate statistics over all recorded scores.
func (s *Store) Summarize() (Summary, error) {
	entries, err := s.AllScores()
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{Games: len(entries)}
	if len(entries) == 0 {
		return sum, nil
	}

	scores := make([]float64, len(entries))
	for i, e := range entries {
		scores[i] = float64(e.Score)
		if e.Score > sum.Best {
			sum.Best = e.Score
		}
		if e.Won {
			sum.Wins++
		}
	}

	sum.Mean = stat.Mean(scores, nil)
	if len(scores) > 1 {
		sum.StdDev = stat.StdDev(scores, nil)
	}

	return sum, nil
}
