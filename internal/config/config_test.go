package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gendergap/series"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultStartYear, cfg.Series.StartYear)
	assert.Equal(t, DefaultEndYear, cfg.Series.EndYear)
	assert.Equal(t, DefaultActualCutoffYear, cfg.Series.ActualCutoffYear)
	assert.Equal(t, []int{2025, 2035}, cfg.Series.ProjectionYears)
	assert.Equal(t, 0.07, cfg.Series.DampingRate)
	assert.Equal(t, []string{"female", "male"}, cfg.MetricKeys())
	assert.Equal(t, "region", cfg.Input.GroupColumn)
	assert.Equal(t, "stderr", cfg.Log.OutputPaths[0])

	if diff := cmp.Diff(DefaultConfig(), cfg, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Load(\"\") differs from DefaultConfig() (-want +got):\n%s", diff)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gendergap.yaml")
	yml := `
series:
  start_year: 1990
  end_year: 2030
  damping_rate: 0.1
  projection_years: [2030]
  metrics:
    - key: life_f
      column: "average_value_Life expectancy at birth, female (years)"
      min: 0
      max: 100
input:
  files: [data/gender.csv]
  group_column: Country Name
  delimiter: ";"
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1990, cfg.Series.StartYear)
	assert.Equal(t, 2030, cfg.Series.EndYear)
	assert.Equal(t, DefaultActualCutoffYear, cfg.Series.ActualCutoffYear)
	assert.Equal(t, []int{2030}, cfg.Series.ProjectionYears)
	assert.Equal(t, []string{"life_f"}, cfg.MetricKeys())
	assert.Equal(t, []string{"data/gender.csv"}, cfg.Input.Files)
	assert.Equal(t, "debug", cfg.Log.Level)

	opts := cfg.CSVOptions()
	assert.Equal(t, "Country Name", opts.GroupColumn)
	assert.Equal(t, "Year", opts.YearColumn)
	assert.Equal(t, ';', opts.Delimiter)
	assert.Equal(t, map[string]string{"life_f": "average_value_Life expectancy at birth, female (years)"}, opts.Metrics)

	assert.Empty(t, cfg.RawCSVOptions().Metrics)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GENDERGAP_SERIES_DAMPING_RATE", "0.2")
	t.Setenv("GENDERGAP_SERIES_END_YEAR", "2050")
	t.Setenv("GENDERGAP_INPUT_GROUP_COLUMN", "Country Name")
	t.Setenv("GENDERGAP_LOG_LEVEL", "warn")

	cfg, err := LoadFromReader(strings.NewReader("series:\n  start_year: 1980\n"))
	require.NoError(t, err)

	assert.Equal(t, 0.2, cfg.Series.DampingRate)
	assert.Equal(t, 2050, cfg.Series.EndYear)
	assert.Equal(t, 1980, cfg.Series.StartYear)
	assert.Equal(t, "Country Name", cfg.Input.GroupColumn)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		inSeries bool
	}{
		{"start after end", func(c *Config) { c.Series.StartYear = 2100 }, true},
		{"negative damping", func(c *Config) { c.Series.DampingRate = -0.5 }, true},
		{"inverted domain", func(c *Config) { c.Series.Metrics[0].Min = 200 }, true},
		{"duplicate key", func(c *Config) { c.Series.Metrics[1].Key = "female" }, true},
		{"empty metric key", func(c *Config) { c.Series.Metrics[0].Key = "" }, false},
		{"empty metric column", func(c *Config) { c.Series.Metrics[0].Column = "" }, false},
		{"empty group column", func(c *Config) { c.Input.GroupColumn = "" }, false},
		{"long delimiter", func(c *Config) { c.Input.Delimiter = ";;" }, false},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
			assert.Equal(t, tt.inSeries, errors.Is(err, series.ErrInvalidConfig))
		})
	}

	assert.NoError(t, DefaultConfig().Validate())
}

func TestLoadRejectsInvalid(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("series:\n  start_year: 2040\n  end_year: 2000\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))
}

func TestLoadRejectsExplicitZeroDampingRate(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("series:\n  damping_rate: 0\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))
	assert.True(t, errors.Is(err, series.ErrInvalidConfig))

	t.Setenv("GENDERGAP_SERIES_DAMPING_RATE", "0")
	_, err = Load("")
	assert.True(t, errors.Is(err, ErrInvalid))
}

func TestSeriesConfig(t *testing.T) {
	cfg := DefaultConfig()
	sc := cfg.SeriesConfig()

	assert.Equal(t, []string{"female", "male"}, sc.MetricKeys)
	assert.Equal(t, series.Domain{Min: 0, Max: 120}, sc.MetricDomain["female"])

	sc.ProjectionYears[0] = 1
	assert.Equal(t, 2025, cfg.Series.ProjectionYears[0])
}

func TestDumpRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Input.Files = []string{"a.csv", "b.csv"}
	cfg.Series.DampingRate = 0.09

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, cfg))
	assert.Contains(t, buf.String(), "damping_rate: 0.09")

	got, err := LoadFromReader(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(cfg, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Dump/Load mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Series.StartYear = 1960
	cfg.Log.Format = "json"
	ApplyDefaults(cfg)

	assert.Equal(t, 1960, cfg.Series.StartYear)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, DefaultEndYear, cfg.Series.EndYear)

	ApplyDefaults(nil)
}
