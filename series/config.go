package series

import (
	"errors"
	"fmt"

	"github.com/sartorproj/gendergap/timeseries"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("invalid series config")

// Domain is the inclusive clamp range of a metric.
type Domain struct {
	Min float64
	Max float64
}

// Clamp bounds v to the domain.
func (d Domain) Clamp(v float64) float64 {
	return timeseries.Clamp(v, d.Min, d.Max)
}

// Config describes the dense series to build. Every field is required; the
// engine applies no defaults of its own.
type Config struct {
	StartYear        int               // First year of the dense output
	EndYear          int               // Last year of the dense output, inclusive
	ActualCutoffYear int               // Years after this are flagged as projected
	ProjectionYears  []int             // Future years to synthesize; years at or before a group's last actual year are dropped
	DampingRate      float64           // Decay constant of the projected trend (> 0)
	MetricDomain     map[string]Domain // Clamp range per metric
	MetricKeys       []string          // Metrics to track
}

// Years returns the number of frames each non-empty group produces.
func (c Config) Years() int {
	return c.EndYear - c.StartYear + 1
}

// ClampYear bounds year to [StartYear, EndYear].
func (c Config) ClampYear(year int) int {
	return min(c.EndYear, max(c.StartYear, year))
}

// Validate reports the first problem with the config, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	if c.StartYear > c.EndYear {
		return fmt.Errorf("%w: start year %d is after end year %d", ErrInvalidConfig, c.StartYear, c.EndYear)
	}
	if !timeseries.IsFinite(c.DampingRate) || c.DampingRate <= 0 {
		return fmt.Errorf("%w: damping rate must be positive, got %v", ErrInvalidConfig, c.DampingRate)
	}
	if len(c.MetricKeys) == 0 {
		return fmt.Errorf("%w: no metric keys", ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(c.MetricKeys))
	for _, k := range c.MetricKeys {
		if seen[k] {
			return fmt.Errorf("%w: duplicate metric key %q", ErrInvalidConfig, k)
		}
		seen[k] = true

		d, ok := c.MetricDomain[k]
		if !ok {
			return fmt.Errorf("%w: metric %q has no domain", ErrInvalidConfig, k)
		}
		if !timeseries.IsFinite(d.Min) || !timeseries.IsFinite(d.Max) || d.Min > d.Max {
			return fmt.Errorf("%w: metric %q has invalid domain [%v, %v]", ErrInvalidConfig, k, d.Min, d.Max)
		}
	}

	years := make(map[int]bool, len(c.ProjectionYears))
	for _, y := range c.ProjectionYears {
		if years[y] {
			return fmt.Errorf("%w: duplicate projection year %d", ErrInvalidConfig, y)
		}
		years[y] = true
	}
	return nil
}
