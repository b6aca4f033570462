package timeseries

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ErrNoRows is returned when a CSV source yields no usable observation.
var ErrNoRows = errors.New("no valid rows found in CSV")

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	GroupColumn string            // Column holding the group (region or country) name
	YearColumn  string            // Column holding the integer year
	Metrics     map[string]string // Metric key -> column name; empty loads every other column keyed by header
	NATokens    []string          // Cell values treated as missing
	Delimiter   rune              // Field delimiter (default: ',')
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		GroupColumn: "region",
		YearColumn:  "Year",
		NATokens:    []string{"", "NA", "NaN", "null", ".."},
		Delimiter:   ',',
	}
}

// LoadCSV loads observations from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) ([]Observation, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	obs, err := LoadCSVFromReader(file, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return obs, nil
}

// LoadCSVFiles loads several CSV files concurrently and concatenates their
// observations in argument order. The first failure cancels the rest.
func LoadCSVFiles(ctx context.Context, filenames []string, opts *CSVOptions) ([]Observation, error) {
	results := make([][]Observation, len(filenames))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range filenames {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			obs, err := LoadCSV(name, opts)
			if err != nil {
				return err
			}
			results[i] = obs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Observation
	for _, obs := range results {
		all = append(all, obs...)
	}
	return all, nil
}

// LoadCSVFromReader loads observations from an io.Reader. Rows without a group
// or with an unparsable year are skipped. Missing or non-numeric metric cells
// are left out of Observation.Metrics rather than read as zero.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) ([]Observation, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, ErrNoRows
		}
		return nil, err
	}

	groupIdx, yearIdx := -1, -1
	columns := make(map[string]int, len(header))
	for i, h := range header {
		h = cleanCell(h)
		columns[h] = i
		switch h {
		case opts.GroupColumn:
			groupIdx = i
		case opts.YearColumn:
			yearIdx = i
		}
	}
	if groupIdx == -1 {
		return nil, fmt.Errorf("group column %q not found", opts.GroupColumn)
	}
	if yearIdx == -1 {
		return nil, fmt.Errorf("year column %q not found", opts.YearColumn)
	}

	metricIdx := make(map[string]int)
	if len(opts.Metrics) > 0 {
		for key, col := range opts.Metrics {
			idx, ok := columns[col]
			if !ok {
				return nil, fmt.Errorf("metric %q: column %q not found", key, col)
			}
			metricIdx[key] = idx
		}
	} else {
		for i, h := range header {
			if i == groupIdx || i == yearIdx {
				continue
			}
			metricIdx[cleanCell(h)] = i
		}
	}

	na := make(map[string]bool, len(opts.NATokens))
	for _, tok := range opts.NATokens {
		na[tok] = true
	}

	var obs []Observation
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if groupIdx >= len(record) || yearIdx >= len(record) {
			continue
		}
		group := cleanCell(record[groupIdx])
		if group == "" {
			continue
		}
		year, ok := parseYear(cleanCell(record[yearIdx]))
		if !ok {
			continue
		}

		o := Observation{Group: group, Year: year, Metrics: make(map[string]float64, len(metricIdx))}
		for key, idx := range metricIdx {
			if idx >= len(record) {
				continue
			}
			cell := cleanCell(record[idx])
			if na[cell] {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil || !IsFinite(v) {
				continue
			}
			o.Metrics[key] = v
		}
		obs = append(obs, o)
	}

	if len(obs) == 0 {
		return nil, ErrNoRows
	}
	return obs, nil
}

func cleanCell(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	return strings.TrimSpace(strings.Trim(s, "\""))
}

// parseYear accepts "1970" as well as integral float spellings like "1970.0".
func parseYear(s string) (int, bool) {
	if y, err := strconv.Atoi(s); err == nil {
		return y, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || !IsFinite(f) || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// ReadCSVHeader returns the cleaned column names of a CSV file.
func ReadCSVHeader(filename string, delimiter rune) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	if delimiter != 0 {
		reader.Comma = delimiter
	}
	reader.TrimLeadingSpace = true
	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%s: %w", filename, ErrNoRows)
		}
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	for i, h := range header {
		header[i] = cleanCell(h)
	}
	return header, nil
}
