// Package projection implements damped-trend extrapolation for sparse annual
// series.
//
// A Model takes the last two observed points of a series, computes a linear
// slope per metric and continues it into the future with an exponentially
// decaying weight:
//
//	value(year) = last + slope * yearsAhead * exp(-rate * yearsAhead)
//
// where yearsAhead = year - lastYear. The trend keeps the observed direction
// but levels off over long horizons instead of running away linearly.
//
// # Basic Usage
//
//	model, err := projection.New(0.07)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := model.Fit(actualPoints, []string{"female", "male"}); err != nil {
//	    // fewer than two points: nothing to project
//	}
//	projected, _ := model.Predict([]int{2025, 2035})
//
// Projected points are not clamped here; the series package clamps them into
// each metric's domain.
package projection
