package engine

import "time"

// SpeedController computes the tick interval as food is eaten. The
// interval only changes on food-count milestones, never per tick, and
// is monotonically non-increasing with a hard floor at the configured
// minimum.
type SpeedController struct {
	currentMs    float64
	minMs        float64
	decayPercent int
	perStep      int
	foodEaten    int
}

// NewSpeedController creates a controller at the configured initial speed.
func NewSpeedController(cfg Config) *SpeedController {
	return &SpeedController{
		currentMs:    float64(cfg.InitialSpeedMs),
		minMs:        float64(cfg.MinSpeedMs),
		decayPercent: cfg.SpeedDecayPercent,
		perStep:      cfg.FoodPerSpeedStep,
	}
}

// OnFoodEaten records one eaten food item. Every perStep items the
// interval decays by decayPercent/20 of its current value, clamped at
// the minimum.
func (s *SpeedController) OnFoodEaten() {
	s.foodEaten++
	if s.foodEaten%s.perStep != 0 {
		return
	}
	decay := float64(s.decayPercent) / 20.0 * s.currentMs
	s.currentMs -= decay
	if s.currentMs < s.minMs {
		s.currentMs = s.minMs
	}
}

// CurrentMs returns the current tick interval in milliseconds.
func (s *SpeedController) CurrentMs() float64 {
	return s.currentMs
}

// Interval returns the current tick interval as a duration.
func (s *SpeedController) Interval() time.Duration {
	return time.Duration(s.currentMs * float64(time.Millisecond))
}
