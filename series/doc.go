// Package series reconstructs dense annual series from sparse observations.
//
// Input rows are grouped by Observation.Group. For every group, Build:
//
//  1. keeps rows where every tracked metric is finite (rows sharing a year are
//     averaged) and sorts them by year: the actual points;
//  2. with at least two actual points, fits a damped trend on the last two and
//     projects it into the configured projection years after the last actual
//     year;
//  3. clamps actual and projected values into each metric's domain: the
//     extended points;
//  4. samples the extended points at every year from StartYear to EndYear,
//     interpolating linearly inside the data and holding boundary values
//     outside it, and flags years after ActualCutoffYear as projected.
//
// # Basic Usage
//
//	cfg := series.Config{
//	    StartYear:        1970,
//	    EndYear:          2035,
//	    ActualCutoffYear: 2020,
//	    ProjectionYears:  []int{2025, 2035},
//	    DampingRate:      0.07,
//	    MetricDomain:     map[string]series.Domain{"female": {0, 120}, "male": {0, 120}},
//	    MetricKeys:       []string{"female", "male"},
//	}
//	set, err := series.Build(observations, cfg, series.WithLogger(logger))
//	if err != nil {
//	    // invalid config
//	}
//	frame, ok := set["South Asia"].Frame(2025)
//
// # Degraded Groups
//
// A group with a single actual point is flat over the whole range and has
// Condition ConditionFlat. A group with no complete row is still present in
// the Set, with an empty Yearly slice and Condition ConditionNoData; its Frame
// lookups report false. Neither case is an error; both are logged at warn
// level.
//
// Years outside [StartYear, EndYear] passed to Frame or Range are clamped.
package series
