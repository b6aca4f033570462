// Package config loads gendergap settings from YAML files and GENDERGAP_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/sartorproj/gendergap/internal/logging"
	"github.com/sartorproj/gendergap/series"
	"github.com/sartorproj/gendergap/timeseries"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the root configuration.
type Config struct {
	Series SeriesConfig      `mapstructure:"series" yaml:"series"`
	Input  InputConfig       `mapstructure:"input" yaml:"input"`
	Decade DecadeConfig      `mapstructure:"decade" yaml:"decade"`
	Log    logging.LogConfig `mapstructure:"log" yaml:"log"`
}

// SeriesConfig holds the engine parameters.
type SeriesConfig struct {
	StartYear        int            `mapstructure:"start_year" yaml:"start_year"`
	EndYear          int            `mapstructure:"end_year" yaml:"end_year"`
	ActualCutoffYear int            `mapstructure:"actual_cutoff_year" yaml:"actual_cutoff_year"`
	ProjectionYears  []int          `mapstructure:"projection_years" yaml:"projection_years"`
	DampingRate      float64        `mapstructure:"damping_rate" yaml:"damping_rate"`
	Metrics          []MetricConfig `mapstructure:"metrics" yaml:"metrics"`
}

// MetricConfig binds a metric key to its source column and clamp domain.
type MetricConfig struct {
	Key    string  `mapstructure:"key" yaml:"key"`
	Column string  `mapstructure:"column" yaml:"column"`
	Min    float64 `mapstructure:"min" yaml:"min"`
	Max    float64 `mapstructure:"max" yaml:"max"`
}

// InputConfig describes the CSV sources.
type InputConfig struct {
	Files       []string `mapstructure:"files" yaml:"files"`
	GroupColumn string   `mapstructure:"group_column" yaml:"group_column"`
	YearColumn  string   `mapstructure:"year_column" yaml:"year_column"`
	NATokens    []string `mapstructure:"na_tokens" yaml:"na_tokens"`
	Delimiter   string   `mapstructure:"delimiter" yaml:"delimiter"`
}

// DecadeConfig controls decade averaging of raw observations.
type DecadeConfig struct {
	MinYear int      `mapstructure:"min_year" yaml:"min_year"`
	Hide    []string `mapstructure:"hide" yaml:"hide"` // Decade label prefixes left out of listings
}

// MetricKeys returns the configured metric keys in order.
func (c *Config) MetricKeys() []string {
	keys := make([]string, 0, len(c.Series.Metrics))
	for _, m := range c.Series.Metrics {
		keys = append(keys, m.Key)
	}
	return keys
}

// SeriesConfig converts the series section into a series.Config.
func (c *Config) SeriesConfig() series.Config {
	domains := make(map[string]series.Domain, len(c.Series.Metrics))
	for _, m := range c.Series.Metrics {
		domains[m.Key] = series.Domain{Min: m.Min, Max: m.Max}
	}
	return series.Config{
		StartYear:        c.Series.StartYear,
		EndYear:          c.Series.EndYear,
		ActualCutoffYear: c.Series.ActualCutoffYear,
		ProjectionYears:  append([]int(nil), c.Series.ProjectionYears...),
		DampingRate:      c.Series.DampingRate,
		MetricDomain:     domains,
		MetricKeys:       c.MetricKeys(),
	}
}

// CSVOptions returns loader options that map each metric key to its column.
func (c *Config) CSVOptions() *timeseries.CSVOptions {
	opts := c.RawCSVOptions()
	opts.Metrics = make(map[string]string, len(c.Series.Metrics))
	for _, m := range c.Series.Metrics {
		opts.Metrics[m.Key] = m.Column
	}
	return opts
}

// RawCSVOptions returns loader options that keep every column, keyed by
// its header.
func (c *Config) RawCSVOptions() *timeseries.CSVOptions {
	opts := timeseries.DefaultCSVOptions()
	opts.GroupColumn = c.Input.GroupColumn
	opts.YearColumn = c.Input.YearColumn
	if c.Input.NATokens != nil {
		opts.NATokens = append([]string(nil), c.Input.NATokens...)
	}
	if r, _ := utf8.DecodeRuneInString(c.Input.Delimiter); r != utf8.RuneError {
		opts.Delimiter = r
	}
	return opts
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if c.Input.GroupColumn == "" {
		return fmt.Errorf("%w: input.group_column is empty", ErrInvalid)
	}
	if c.Input.YearColumn == "" {
		return fmt.Errorf("%w: input.year_column is empty", ErrInvalid)
	}
	if utf8.RuneCountInString(c.Input.Delimiter) != 1 {
		return fmt.Errorf("%w: input.delimiter must be a single character, got %q", ErrInvalid, c.Input.Delimiter)
	}
	for i, m := range c.Series.Metrics {
		if m.Key == "" {
			return fmt.Errorf("%w: series.metrics[%d].key is empty", ErrInvalid, i)
		}
		if m.Column == "" {
			return fmt.Errorf("%w: series.metrics[%d].column is empty", ErrInvalid, i)
		}
	}
	if err := c.SeriesConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, ok := logging.ParseLevel(c.Log.Level); !ok {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}
