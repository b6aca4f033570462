package series

import (
	"sort"

	"github.com/sartorproj/gendergap/internal/logging"
	"github.com/sartorproj/gendergap/projection"
	"github.com/sartorproj/gendergap/timeseries"
)

// Condition summarises how much data a group had to work with.
type Condition string

const (
	// ConditionComplete means at least two actual points; projections were attempted.
	ConditionComplete Condition = "complete"
	// ConditionFlat means a single actual point; the series is flat and unprojected.
	ConditionFlat Condition = "flat"
	// ConditionNoData means no row had every tracked metric; the series is empty.
	ConditionNoData Condition = "no_data"
)

// Set maps each group to its series.
type Set map[string]*Lookup

// Groups returns the group names sorted ascending.
func (s Set) Groups() []string {
	groups := make([]string, 0, len(s))
	for g := range s {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups
}

// Build groups the observations and builds one Lookup per group. Every group
// that appears in obs is present in the result, including groups with no
// usable rows (ConditionNoData, empty Yearly). Build returns an error only for
// an invalid config.
func Build(obs []timeseries.Observation, cfg Config, opts ...Option) (Set, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := applyOptions(opts).logger.Named("series")

	grouped := make(map[string][]timeseries.Observation)
	for _, o := range obs {
		grouped[o.Group] = append(grouped[o.Group], o)
	}

	set := make(Set, len(grouped))
	degraded := 0
	for group, rows := range grouped {
		l := buildGroup(group, rows, cfg, log.With(logging.String("group", group)))
		if l.Condition != ConditionComplete {
			degraded++
		}
		set[group] = l
	}

	log.Info("series built",
		logging.Int("groups", len(set)),
		logging.Int("degraded", degraded),
		logging.Int("start_year", cfg.StartYear),
		logging.Int("end_year", cfg.EndYear),
		logging.Float64("damping_rate", cfg.DampingRate))
	return set, nil
}

func buildGroup(group string, rows []timeseries.Observation, cfg Config, log logging.Logger) *Lookup {
	actual := actualPoints(rows, cfg.MetricKeys, log)

	l := &Lookup{
		Group:     group,
		Actual:    actual,
		startYear: cfg.StartYear,
		endYear:   cfg.EndYear,
		byYear:    make(map[int]Frame),
	}

	switch len(actual) {
	case 0:
		l.Condition = ConditionNoData
		log.Warn("group has no complete rows; series left empty", logging.Int("rows", len(rows)))
		return l
	case 1:
		l.Condition = ConditionFlat
		log.Warn("fewer than two actual points; projection skipped", logging.Int("points", 1))
	default:
		l.Condition = ConditionComplete
	}

	extended := make([]timeseries.Point, 0, len(actual)+len(cfg.ProjectionYears))
	for _, p := range actual {
		extended = append(extended, p.Copy())
	}
	if l.Condition == ConditionComplete {
		extended = append(extended, project(actual, cfg, log)...)
	}
	for i := range extended {
		for _, k := range cfg.MetricKeys {
			extended[i].Values[k] = cfg.MetricDomain[k].Clamp(extended[i].Values[k])
		}
	}
	timeseries.SortPoints(extended)
	l.Extended = extended

	l.Yearly = make([]Frame, 0, cfg.Years())
	for yr := cfg.StartYear; yr <= cfg.EndYear; yr++ {
		values := make(map[string]float64, len(cfg.MetricKeys))
		for _, k := range cfg.MetricKeys {
			values[k] = timeseries.Interpolate(extended, yr, k)
		}
		f := Frame{Year: yr, Values: values, Projected: yr > cfg.ActualCutoffYear}
		l.Yearly = append(l.Yearly, f)
		l.byYear[yr] = f
	}

	log.Debug("group built",
		logging.Int("actual", len(actual)),
		logging.Int("extended", len(extended)),
		logging.Bool("projected", len(extended) > len(actual)),
		logging.String("condition", string(l.Condition)))
	return l
}

// actualPoints keeps rows where every tracked metric is finite, averages rows
// that share a year and sorts the result by year.
func actualPoints(rows []timeseries.Observation, keys []string, log logging.Logger) []timeseries.Point {
	sums := make(map[int]map[string]float64)
	counts := make(map[int]int)
	skipped := 0

	for _, r := range rows {
		if !r.HasAll(keys) {
			skipped++
			continue
		}
		s, ok := sums[r.Year]
		if !ok {
			s = make(map[string]float64, len(keys))
			sums[r.Year] = s
		}
		for _, k := range keys {
			v, _ := r.Value(k)
			s[k] += v
		}
		counts[r.Year]++
	}

	if skipped > 0 {
		log.Debug("rows missing a tracked metric were dropped", logging.Int("rows", skipped))
	}

	points := make([]timeseries.Point, 0, len(sums))
	for yr, s := range sums {
		n := float64(counts[yr])
		if counts[yr] > 1 {
			log.Debug("duplicate year averaged", logging.Int("year", yr), logging.Int("rows", counts[yr]))
		}
		values := make(map[string]float64, len(keys))
		for _, k := range keys {
			values[k] = s[k] / n
		}
		points = append(points, timeseries.Point{Year: yr, Values: values})
	}
	timeseries.SortPoints(points)
	return points
}

// project extends the last two actual points into the configured projection
// years. Years at or before the last actual year are not future years and are
// skipped.
func project(actual []timeseries.Point, cfg Config, log logging.Logger) []timeseries.Point {
	model, err := projection.New(cfg.DampingRate)
	if err != nil {
		log.Error("projection model rejected damping rate", logging.Err(err))
		return nil
	}
	if err := model.Fit(actual, cfg.MetricKeys); err != nil {
		log.Warn("projection skipped", logging.Err(err))
		return nil
	}

	lastYear := model.LastYear()
	future := make([]int, 0, len(cfg.ProjectionYears))
	for _, yr := range cfg.ProjectionYears {
		if yr <= lastYear {
			log.Debug("projection year not after last actual year; skipped",
				logging.Int("year", yr), logging.Int("last_actual", lastYear))
			continue
		}
		future = append(future, yr)
	}

	projected, err := model.Predict(future)
	if err != nil {
		log.Warn("projection skipped", logging.Err(err))
		return nil
	}
	return projected
}
