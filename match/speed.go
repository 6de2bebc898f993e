package match

import (
	"math"
	"time"
)

// SpeedController maps a normalized slider value onto a step interval.
// Higher values mean shorter intervals.
type SpeedController struct {
	MinInterval time.Duration
	MaxInterval time.Duration
}

// Interval linearly interpolates from MaxInterval at 0 to MinInterval at 1.
// NaN is treated as 0.
func (s SpeedController) Interval(normalized float64) time.Duration {
	normalized = ClampSpeed(normalized)
	span := float64(s.MaxInterval - s.MinInterval)
	return s.MaxInterval - time.Duration(span*normalized)
}

// ClampSpeed bounds a slider value to [0,1], mapping NaN to 0
func ClampSpeed(normalized float64) float64 {
	if math.IsNaN(normalized) {
		return 0
	}
	return min(max(normalized, 0), 1)
}
