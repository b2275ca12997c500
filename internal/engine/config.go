package engine

import "fmt"

// Documented defaults and bounds for session configuration.
const (
	DefaultCellGrowthPerFood = 1
	DefaultScorePerFood      = 1
	DefaultInitialSpeedMs    = 250
	DefaultMinSpeedMs        = 50
	DefaultSpeedDecayPct     = 1
	DefaultFoodPerSpeedStep  = 10

	MinInitialSpeedMs = 100
	MaxInitialSpeedMs = 999
	MaxSpeedDecayPct  = 10

	// MinDimension is the smallest board that can host the initial
	// three-segment snake with room to move.
	MinDimension = 5
)

// RawConfig is the unvalidated session configuration as supplied by the
// host (flags, YAML file). Zero fields mean "not set" and fall back to
// defaults during Normalize; Dimension is the single required field.
type RawConfig struct {
	Dimension         int
	CellGrowthPerFood int
	ScorePerFood      int
	InitialSpeedMs    int
	MinSpeedMs        int
	SpeedDecayPercent int
	FoodPerSpeedStep  int
}

// Config is a fully-populated, validated session configuration.
// Immutable for the lifetime of a game session.
type Config struct {
	Dimension         int
	CellGrowthPerFood int
	ScorePerFood      int
	InitialSpeedMs    int
	MinSpeedMs        int
	SpeedDecayPercent int
	FoodPerSpeedStep  int
}

// Normalize clamps every raw field into its documented range and fills
// defaults for unset values. Out-of-range values are never rejected;
// the only possible error is a missing or non-positive Dimension, which
// has no sensible default.
func Normalize(raw RawConfig) (Config, error) {
	if raw.Dimension <= 0 {
		return Config{}, fmt.Errorf("engine: dimension is required, got %d", raw.Dimension)
	}

	cfg := Config{
		Dimension:         maxInt(raw.Dimension, MinDimension),
		CellGrowthPerFood: atLeast(raw.CellGrowthPerFood, DefaultCellGrowthPerFood, 1),
		ScorePerFood:      atLeast(raw.ScorePerFood, DefaultScorePerFood, 1),
		InitialSpeedMs:    raw.InitialSpeedMs,
		MinSpeedMs:        raw.MinSpeedMs,
		SpeedDecayPercent: raw.SpeedDecayPercent,
		FoodPerSpeedStep:  atLeast(raw.FoodPerSpeedStep, DefaultFoodPerSpeedStep, 1),
	}

	if cfg.InitialSpeedMs == 0 {
		cfg.InitialSpeedMs = DefaultInitialSpeedMs
	}
	cfg.InitialSpeedMs = clamp(cfg.InitialSpeedMs, MinInitialSpeedMs, MaxInitialSpeedMs)

	cfg.SpeedDecayPercent = clamp(cfg.SpeedDecayPercent, 0, MaxSpeedDecayPct)

	if cfg.MinSpeedMs <= 0 {
		cfg.MinSpeedMs = DefaultMinSpeedMs
	}
	// Min speed must stay strictly below the initial speed.
	if cfg.MinSpeedMs >= cfg.InitialSpeedMs {
		cfg.MinSpeedMs = cfg.InitialSpeedMs - 1
	}

	return cfg, nil
}

// atLeast returns v, substituting def when v is zero (unset) and
// clamping to min otherwise.
func atLeast(v, def, min int) int {
	if v == 0 {
		return def
	}
	if v < min {
		return min
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
