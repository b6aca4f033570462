package timeseries

import (
	"regexp"
	"strings"
)

var (
	femaleWord   = regexp.MustCompile(`(?i)female`)
	femaleSuffix = regexp.MustCompile(`(?i), female.*$`)
	valuePrefix  = regexp.MustCompile(`(?i)^average_value_`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// MetricPair links the female and male columns of the same indicator.
type MetricPair struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Female string `json:"female"`
	Male   string `json:"male"`
}

// MetricSingle is an indicator column without a gender counterpart.
type MetricSingle struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Column string `json:"column"`
}

// PairMetricColumns pairs every column mentioning "female" with the column
// obtained by replacing that word with "male", when such a column exists.
// Columns left over are returned as singles. Both results keep input order.
func PairMetricColumns(columns []string) ([]MetricPair, []MetricSingle) {
	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		present[c] = true
	}

	used := make(map[string]bool)
	var pairs []MetricPair
	for _, col := range columns {
		loc := femaleWord.FindStringIndex(col)
		if loc == nil {
			continue
		}
		male := col[:loc[0]] + "male" + col[loc[1]:]
		if !present[male] {
			continue
		}
		label := strings.TrimSpace(femaleSuffix.ReplaceAllString(valuePrefix.ReplaceAllString(col, ""), ""))
		used[col] = true
		used[male] = true
		pairs = append(pairs, MetricPair{
			ID:     metricID(label),
			Label:  label,
			Female: col,
			Male:   male,
		})
	}

	var singles []MetricSingle
	for _, col := range columns {
		if used[col] {
			continue
		}
		label := strings.TrimSpace(valuePrefix.ReplaceAllString(col, ""))
		singles = append(singles, MetricSingle{ID: metricID(label), Label: label, Column: col})
	}
	return pairs, singles
}

func metricID(label string) string {
	return whitespace.ReplaceAllString(strings.ToLower(label), "-")
}
