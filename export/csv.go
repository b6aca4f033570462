package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/sartorproj/gendergap/series"
)

// Header returns the tabular column names for keys.
func Header(keys []string) []string {
	h := make([]string, 0, len(keys)+3)
	h = append(h, "group", "year")
	h = append(h, keys...)
	return append(h, "projected")
}

// WriteCSV writes one row per yearly frame, groups sorted by name. Groups
// without data contribute no rows.
func WriteCSV(w io.Writer, set series.Set, keys []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header(keys)); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	record := make([]string, len(keys)+3)
	for _, g := range set.Groups() {
		for _, f := range set[g].Yearly {
			record[0] = g
			record[1] = strconv.Itoa(f.Year)
			for i, k := range keys {
				record[i+2] = formatValue(f.Values, k)
			}
			record[len(record)-1] = strconv.FormatBool(f.Projected)
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("writing csv row %s/%d: %w", g, f.Year, err)
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

func formatValue(values map[string]float64, key string) string {
	v, ok := values[key]
	if !ok {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
