// Package projection implements damped-trend extrapolation of annual series.
package projection

import (
	"errors"
	"fmt"
	"math"

	"github.com/sartorproj/gendergap/timeseries"
)

var (
	// ErrInsufficientData is returned by Fit when fewer than two points are given.
	ErrInsufficientData = errors.New("at least two points are required to fit a trend")
	// ErrNotFitted is returned by Predict before a successful Fit.
	ErrNotFitted = errors.New("model must be fitted before prediction")
)

// Model continues the trend of the last two observed points, with the slope's
// contribution decaying exponentially as the horizon grows.
type Model struct {
	DampingRate float64
	keys        []string
	slopes      map[string]float64
	last        timeseries.Point
	fitted      bool
}

// New creates a model with the given damping rate. Higher rates flatten the
// projected trend sooner.
func New(dampingRate float64) (*Model, error) {
	if !timeseries.IsFinite(dampingRate) || dampingRate <= 0 {
		return nil, fmt.Errorf("damping rate must be a positive number, got %v", dampingRate)
	}
	return &Model{DampingRate: dampingRate}, nil
}

// Fit estimates a per-metric slope from the last two points by year. Points
// must be sorted ascending and carry a finite value for every key.
func (m *Model) Fit(points []timeseries.Point, keys []string) error {
	if len(points) < 2 {
		return ErrInsufficientData
	}

	last := points[len(points)-1]
	prev := points[len(points)-2]
	span := float64(max(1, last.Year-prev.Year))

	slopes := make(map[string]float64, len(keys))
	for _, k := range keys {
		slopes[k] = (last.Values[k] - prev.Values[k]) / span
	}

	m.keys = append([]string(nil), keys...)
	m.slopes = slopes
	m.last = last.Copy()
	m.fitted = true
	return nil
}

// Predict returns one projected point per requested year, in the order given.
func (m *Model) Predict(years []int) ([]timeseries.Point, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}

	out := make([]timeseries.Point, 0, len(years))
	for _, yr := range years {
		values := make(map[string]float64, len(m.keys))
		for _, k := range m.keys {
			values[k] = m.At(k, yr)
		}
		out = append(out, timeseries.Point{Year: yr, Values: values, Projected: true})
	}
	return out, nil
}

// At returns the projected value of key at year. It returns NaN before Fit or
// for an unknown key.
func (m *Model) At(key string, year int) float64 {
	slope, ok := m.slopes[key]
	if !m.fitted || !ok {
		return math.NaN()
	}
	yearsAhead := float64(year - m.last.Year)
	return m.last.Values[key] + slope*yearsAhead*Decay(m.DampingRate, yearsAhead)
}

// Slopes returns a copy of the fitted per-metric slopes.
func (m *Model) Slopes() map[string]float64 {
	if !m.fitted {
		return nil
	}
	out := make(map[string]float64, len(m.slopes))
	for k, v := range m.slopes {
		out[k] = v
	}
	return out
}

// LastYear is the year the projection is anchored on.
func (m *Model) LastYear() int {
	return m.last.Year
}

// Decay is the damping factor exp(-rate * yearsAhead).
func Decay(rate, yearsAhead float64) float64 {
	return math.Exp(-rate * yearsAhead)
}
