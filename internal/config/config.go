// Package config provides YAML-based configuration loading for the
// termsnake host: engine parameters plus key bindings.
package config

import "github.com/vovakirdan/termsnake/internal/engine"

// FileConfig mirrors the on-disk YAML layout. Values are raw; the
// engine clamps them into valid ranges via engine.Normalize.
type FileConfig struct {
	Board BoardSection `yaml:"board"`
	Food  FoodSection  `yaml:"food"`
	Speed SpeedSection `yaml:"speed"`
	Keys  KeysSection  `yaml:"keys"`
}

// BoardSection defines the playfield geometry.
type BoardSection struct {
	Dimension int `yaml:"dimension"`
}

// FoodSection defines growth and scoring per food item.
type FoodSection struct {
	GrowthPerFood int `yaml:"growth_per_food"`
	ScorePerFood  int `yaml:"score_per_food"`
	PerSpeedStep  int `yaml:"per_speed_step"`
}

// SpeedSection defines the tick interval progression.
type SpeedSection struct {
	InitialMs    int `yaml:"initial_ms"`
	MinMs        int `yaml:"min_ms"`
	DecayPercent int `yaml:"decay_percent"`
}

// KeysSection defines extra key bindings. SaveGame is accepted for
// compatibility with the original interface but has no persistence
// behavior attached; the binding is inert.
type KeysSection struct {
	Pause    string `yaml:"pause"`
	Restart  string `yaml:"restart"`
	SaveGame string `yaml:"save_game"`
}

// Raw converts the file layout into the engine's raw configuration.
func (c FileConfig) Raw() engine.RawConfig {
	return engine.RawConfig{
		Dimension:         c.Board.Dimension,
		CellGrowthPerFood: c.Food.GrowthPerFood,
		ScorePerFood:      c.Food.ScorePerFood,
		InitialSpeedMs:    c.Speed.InitialMs,
		MinSpeedMs:        c.Speed.MinMs,
		SpeedDecayPercent: c.Speed.DecayPercent,
		FoodPerSpeedStep:  c.Food.PerSpeedStep,
	}
}
