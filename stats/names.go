package stats

import "strings"

// aggregateMarkers are lowercase substrings of World Bank regional, income and
// lending group names.
var aggregateMarkers = []string{
	"income",
	"oecd",
	"ida",
	"ibrd",
	"hipc",
	"euro area",
	"europe &",
	"sub-saharan",
	"latin america",
	"caribbean",
	"east asia",
	"central asia",
	"central europe",
	"middle east",
	"north africa",
	"south asia",
	"arab world",
	"world",
	"small states",
	"fragile",
	"pacific",
	"least developed",
	"developing only",
	"developing",
	"high income",
	"low income",
	"upper middle income",
	"lower middle income",
	"g7",
	"g20",
	"demographic dividend",
	"africa eastern and southern",
	"africa western and central",
}

// IsAggregateName reports whether name looks like a regional or income
// aggregate rather than a single country. Matching is a case-insensitive
// substring test.
func IsAggregateName(name string) bool {
	n := strings.ToLower(name)
	for _, m := range aggregateMarkers {
		if strings.Contains(n, m) {
			return true
		}
	}
	return false
}

// Countries returns names that are not aggregates, preserving order.
func Countries(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n != "" && !IsAggregateName(n) {
			out = append(out, n)
		}
	}
	return out
}
