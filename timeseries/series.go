// Package timeseries provides the observation and point types shared by the
// series engine, projection model and aggregation helpers.
package timeseries

import (
	"math"
	"sort"
)

// Observation is one raw input row: a group, a year and its named metrics.
// A metric that was blank or unparsable in the source is absent from Metrics.
type Observation struct {
	Group   string
	Year    int
	Metrics map[string]float64
}

// Value returns the metric value for key. The second result is false when the
// metric is absent or not a finite number.
func (o Observation) Value(key string) (float64, bool) {
	v, ok := o.Metrics[key]
	if !ok || !IsFinite(v) {
		return 0, false
	}
	return v, true
}

// HasAll reports whether every key has a finite value.
func (o Observation) HasAll(keys []string) bool {
	for _, k := range keys {
		if _, ok := o.Value(k); !ok {
			return false
		}
	}
	return true
}

// Point is a single year of a reconstructed series.
type Point struct {
	Year      int                `json:"year"`
	Values    map[string]float64 `json:"values"`
	Projected bool               `json:"projected"`
}

// Copy creates a deep copy of the point.
func (p Point) Copy() Point {
	values := make(map[string]float64, len(p.Values))
	for k, v := range p.Values {
		values[k] = v
	}
	return Point{Year: p.Year, Values: values, Projected: p.Projected}
}

// SortPoints sorts points ascending by year. Points sharing a year keep their
// relative order.
func SortPoints(points []Point) {
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Year < points[j].Year
	})
}

// Interpolate returns the value of key at year from points sorted ascending by
// year. Years before the first point take the first value and years after the
// last point take the last value; anything in between is linearly interpolated
// between the two bracketing points. It returns NaN for an empty slice.
func Interpolate(points []Point, year int, key string) float64 {
	n := len(points)
	if n == 0 {
		return math.NaN()
	}
	if year <= points[0].Year {
		return points[0].Values[key]
	}
	if year >= points[n-1].Year {
		return points[n-1].Values[key]
	}

	i := sort.Search(n, func(i int) bool { return points[i].Year >= year })
	next := points[i]
	if next.Year == year {
		return next.Values[key]
	}
	prev := points[i-1]
	t := float64(year-prev.Year) / float64(next.Year-prev.Year)
	return prev.Values[key] + t*(next.Values[key]-prev.Values[key])
}

// Clamp bounds v to [lower, upper].
func Clamp(v, lower, upper float64) float64 {
	return math.Max(lower, math.Min(upper, v))
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
