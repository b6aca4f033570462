package stats

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/sartorproj/gendergap/timeseries"
)

// DecadeOf maps a year to a decade label. The second result is false when the
// year should not be counted.
type DecadeOf func(year int) (string, bool)

// DecadeLabel returns the decade of year as "1970-1979".
func DecadeLabel(year int) string {
	start := year / 10 * 10
	if year < 0 && year%10 != 0 {
		start -= 10
	}
	return fmt.Sprintf("%d-%d", start, start+9)
}

// DecadeLabelFrom returns a DecadeOf that labels years with DecadeLabel and
// rejects years before minYear.
func DecadeLabelFrom(minYear int) DecadeOf {
	return func(year int) (string, bool) {
		if year < minYear {
			return "", false
		}
		return DecadeLabel(year), true
	}
}

type accumulator struct {
	sum float64
	n   int
}

// DecadeIndex holds per group, decade and metric averages of raw observations.
type DecadeIndex struct {
	cells   map[string]map[string]map[string]*accumulator
	decades map[string]bool
}

// AggregateByGroupAndDecade buckets obs by group and decade. Rows rejected by
// decadeOf are skipped. Only finite metric values contribute to a mean.
func AggregateByGroupAndDecade(obs []timeseries.Observation, decadeOf DecadeOf) *DecadeIndex {
	idx := &DecadeIndex{
		cells:   make(map[string]map[string]map[string]*accumulator),
		decades: make(map[string]bool),
	}
	for _, o := range obs {
		dec, ok := decadeOf(o.Year)
		if !ok {
			continue
		}
		idx.decades[dec] = true

		byDecade, ok := idx.cells[o.Group]
		if !ok {
			byDecade = make(map[string]map[string]*accumulator)
			idx.cells[o.Group] = byDecade
		}
		byMetric, ok := byDecade[dec]
		if !ok {
			byMetric = make(map[string]*accumulator)
			byDecade[dec] = byMetric
		}
		for k := range o.Metrics {
			v, ok := o.Value(k)
			if !ok {
				continue
			}
			acc, ok := byMetric[k]
			if !ok {
				acc = &accumulator{}
				byMetric[k] = acc
			}
			acc.sum += v
			acc.n++
		}
	}
	return idx
}

// Mean returns the average of metric for group in decade. It returns (0, false)
// when there is no finite value to average; absence is never reported as zero.
func (idx *DecadeIndex) Mean(group, decade, metric string) (float64, bool) {
	if idx == nil {
		return 0, false
	}
	acc, ok := idx.cells[group][decade][metric]
	if !ok || acc.n == 0 {
		return 0, false
	}
	return acc.sum / float64(acc.n), true
}

// Decades returns every decade seen, sorted by start year. Labels beginning
// with any of the exclude prefixes are left out.
func (idx *DecadeIndex) Decades(exclude ...string) []string {
	if idx == nil {
		return nil
	}
	out := make([]string, 0, len(idx.decades))
	for dec := range idx.decades {
		if hasAnyPrefix(dec, exclude) {
			continue
		}
		out = append(out, dec)
	}
	sort.Slice(out, func(i, j int) bool {
		si, sj := decadeStart(out[i]), decadeStart(out[j])
		if si != sj {
			return si < sj
		}
		return out[i] < out[j]
	})
	return out
}

// Groups returns the group names sorted ascending.
func (idx *DecadeIndex) Groups() []string {
	if idx == nil {
		return nil
	}
	out := make([]string, 0, len(idx.cells))
	for g := range idx.cells {
		out = append(out, g)
	}
	sort.Strings(out)
	return out
}

// Extent returns the smallest and largest group mean of metric in decade over
// the groups accepted by keep. A nil keep accepts every group. ok is false
// when no accepted group has a value.
func (idx *DecadeIndex) Extent(decade, metric string, keep func(group string) bool) (lo, hi float64, ok bool) {
	if idx == nil {
		return 0, 0, false
	}
	for g := range idx.cells {
		if keep != nil && !keep(g) {
			continue
		}
		v, found := idx.Mean(g, decade, metric)
		if !found {
			continue
		}
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		lo, hi = min(lo, v), max(hi, v)
	}
	return lo, hi, ok
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// decadeStart parses the leading year of a label. Labels that do not start
// with a year sort last.
func decadeStart(label string) int {
	var n int
	if _, err := fmt.Sscanf(label, "%d", &n); err != nil {
		return math.MaxInt
	}
	return n
}
