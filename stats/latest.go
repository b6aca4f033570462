package stats

import "github.com/sartorproj/gendergap/timeseries"

// Latest returns the most recent observation of group that satisfies pred.
// A nil pred accepts every row. Among rows sharing the latest year the first
// one in input order wins.
func Latest(obs []timeseries.Observation, group string, pred func(timeseries.Observation) bool) (timeseries.Observation, bool) {
	var (
		best  timeseries.Observation
		found bool
	)
	for _, o := range obs {
		if o.Group != group {
			continue
		}
		if pred != nil && !pred(o) {
			continue
		}
		if !found || o.Year > best.Year {
			best, found = o, true
		}
	}
	return best, found
}
