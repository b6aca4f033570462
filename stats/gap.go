package stats

import (
	"fmt"
	"math"

	"github.com/sartorproj/gendergap/timeseries"
)

// Gap directions.
const (
	DirectionGirlsAhead = "Girls ahead"
	DirectionBoysAhead  = "Boys ahead"
	DirectionNoGap      = "No gap"
)

// Gap qualifiers.
const (
	QualifierProjected = "projected"
	QualifierObserved  = "observed"
)

// GapSummary describes the difference between two metrics of one frame.
type GapSummary struct {
	Year      int     `json:"year"`
	Gap       float64 `json:"gap"` // a minus b
	Direction string  `json:"direction"`
	Qualifier string  `json:"qualifier"`
}

// Magnitude returns the absolute gap.
func (g GapSummary) Magnitude() float64 {
	return math.Abs(g.Gap)
}

// String renders the summary as a sentence, e.g.
// "Girls ahead by 2.4 percentage points (observed)".
func (g GapSummary) String() string {
	if g.Direction == DirectionNoGap {
		return fmt.Sprintf("No gap (%s)", g.Qualifier)
	}
	return fmt.Sprintf("%s by %.1f percentage points (%s)", g.Direction, g.Magnitude(), g.Qualifier)
}

// Gap compares metric a (girls) with metric b (boys) in frame. Years after
// cutoff are qualified as projected. ok is false when either metric is
// missing or not finite.
func Gap(frame timeseries.Point, a, b string, cutoff int) (GapSummary, bool) {
	va, okA := frame.Values[a]
	vb, okB := frame.Values[b]
	if !okA || !okB || !timeseries.IsFinite(va) || !timeseries.IsFinite(vb) {
		return GapSummary{}, false
	}

	s := GapSummary{Year: frame.Year, Gap: va - vb, Qualifier: QualifierObserved}
	if frame.Year > cutoff {
		s.Qualifier = QualifierProjected
	}
	switch {
	case s.Gap > 0:
		s.Direction = DirectionGirlsAhead
	case s.Gap < 0:
		s.Direction = DirectionBoysAhead
	default:
		s.Direction = DirectionNoGap
	}
	return s, true
}
