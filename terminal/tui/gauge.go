package tui

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrPercentOutOfRange is returned for percentages outside 0..100
	ErrPercentOutOfRange = errors.New("tui: percent must be between 0 and 100 (inclusive)")
	// ErrRatioOutOfRange is returned for ratios outside 0.0..1.0
	ErrRatioOutOfRange = errors.New("tui: ratio must be between 0.0 and 1.0 (inclusive)")
)

// GaugeRatio is a fill fraction guaranteed to lie in [0, 1]
// The zero value is an empty gauge
type GaugeRatio struct {
	v float64
}

// NewRatio validates r, NaN is rejected
func NewRatio(r float64) (GaugeRatio, error) {
	if math.IsNaN(r) || r < 0 || r > 1 {
		return GaugeRatio{}, fmt.Errorf("%w: got %g", ErrRatioOutOfRange, r)
	}
	return GaugeRatio{v: r}, nil
}

// RatioFromPercent validates p and stores it as p/100
func RatioFromPercent(p int) (GaugeRatio, error) {
	if p < 0 || p > 100 {
		return GaugeRatio{}, fmt.Errorf("%w: got %d", ErrPercentOutOfRange, p)
	}
	return GaugeRatio{v: float64(p) / 100.0}, nil
}

// RatioOf returns value/max clamped to [0, 1]; a non-positive max yields an empty gauge
func RatioOf(value, max int) GaugeRatio {
	if max <= 0 || value <= 0 {
		return GaugeRatio{}
	}
	if value >= max {
		return GaugeRatio{v: 1}
	}
	return GaugeRatio{v: float64(value) / float64(max)}
}

// Float returns the ratio as a float in [0, 1]
func (r GaugeRatio) Float() float64 {
	return r.v
}

// Percent returns the ratio scaled to 0..100, rounded half away from zero
func (r GaugeRatio) Percent() int {
	return int(math.Round(r.v * 100))
}

// Label returns the default gauge label, e.g. "44%"
func (r GaugeRatio) Label() string {
	return fmt.Sprintf("%d%%", r.Percent())
}
