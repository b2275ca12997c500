package storage

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// scoreRecord is the CSV projection of a score entry.
type scoreRecord struct {
	ID        int64  `csv:"id"`
	Score     int    `csv:"score"`
	SnakeLen  int    `csv:"snake_len"`
	Dimension int    `csv:"dimension"`
	Won       bool   `csv:"won"`
	CreatedAt string `csv:"created_at"`
}

// ExportCSV writes the full score history to w as CSV with headers.
func (s *Store) ExportCSV(w io.Writer) error {
	entries, err := s.AllScores()
	if err != nil {
		return err
	}

	records := make([]scoreRecord, len(entries))
	for i, e := range entries {
		records[i] = scoreRecord{
			ID:        e.ID,
			Score:     e.Score,
			SnakeLen:  e.SnakeLen,
			Dimension: e.Dimension,
			Won:       e.Won,
			CreatedAt: e.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}

	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("storage: writing CSV export: %w", err)
	}
	return nil
}
