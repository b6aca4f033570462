package series

import "github.com/sartorproj/gendergap/timeseries"

// Frame is one year of a dense annual series. Projected is true iff the year
// is after the configured cutoff, however its value was derived.
type Frame = timeseries.Point

// Lookup is the built series of one group.
type Lookup struct {
	Group     string
	Actual    []timeseries.Point // Rows with every metric, by year, unclamped
	Extended  []timeseries.Point // Actual plus projected points, clamped, by year
	Yearly    []Frame            // One frame per year in [StartYear, EndYear]; empty without data
	Condition Condition

	startYear int
	endYear   int
	byYear    map[int]Frame
}

// HasData reports whether the group produced any frame.
func (l *Lookup) HasData() bool {
	return l != nil && len(l.Yearly) > 0
}

// Frame returns the frame for year after clamping it into the configured range.
// The second result is false only when the group has no data.
func (l *Lookup) Frame(year int) (Frame, bool) {
	if !l.HasData() {
		return Frame{}, false
	}
	f, ok := l.byYear[l.clampYear(year)]
	if !ok {
		return Frame{}, false
	}
	return f.Copy(), true
}

// Value returns one metric of the frame at year.
func (l *Lookup) Value(year int, key string) (float64, bool) {
	f, ok := l.Frame(year)
	if !ok {
		return 0, false
	}
	v, ok := f.Values[key]
	return v, ok
}

// Range returns copies of the frames from..to inclusive, both clamped into the
// configured range. It returns nil when the group has no data or from > to.
func (l *Lookup) Range(from, to int) []Frame {
	if !l.HasData() {
		return nil
	}
	from, to = l.clampYear(from), l.clampYear(to)
	if from > to {
		return nil
	}
	out := make([]Frame, 0, to-from+1)
	for yr := from; yr <= to; yr++ {
		out = append(out, l.byYear[yr].Copy())
	}
	return out
}

func (l *Lookup) clampYear(year int) int {
	return min(l.endYear, max(l.startYear, year))
}

// LookupFrame returns the frame of l at year, clamped into range. A nil Lookup
// behaves like a group with no data.
func LookupFrame(l *Lookup, year int) (Frame, bool) {
	return l.Frame(year)
}
