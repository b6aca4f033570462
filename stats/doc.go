// Package stats summarises raw observations and built frames: decade
// averages per group, the latest row matching a predicate, the gap between
// two metrics of a frame and a filter for aggregate group names.
//
// # Decade averages
//
//	idx := stats.AggregateByGroupAndDecade(rows, stats.DecadeLabelFrom(1970))
//	for _, dec := range idx.Decades("2020") {
//	    if v, ok := idx.Mean("Kenya", dec, metric); ok {
//	        fmt.Printf("%s: %.1f\n", dec, v)
//	    }
//	}
//
// Mean never substitutes zero for a missing value; callers get ok == false.
//
// # Gaps
//
//	f, _ := lookup.Frame(2025)
//	if g, ok := stats.Gap(f, "female", "male", 2020); ok {
//	    fmt.Println(g) // Girls ahead by 3.1 percentage points (projected)
//	}
package stats
