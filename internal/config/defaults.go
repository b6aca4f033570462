package config

import "github.com/spf13/viper"

const (
	DefaultStartYear        = 1970
	DefaultEndYear          = 2035
	DefaultActualCutoffYear = 2020
	DefaultDampingRate      = 0.07

	DefaultGroupColumn = "region"
	DefaultYearColumn  = "Year"
	DefaultDelimiter   = ","

	DefaultDecadeMinYear = 1970

	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// DefaultProjectionYears are the future years synthesized per group.
var DefaultProjectionYears = []int{2025, 2035}

// DefaultMetrics tracks secondary school enrollment for girls and boys.
var DefaultMetrics = []MetricConfig{
	{Key: "female", Column: "average_value_School enrollment, secondary, female (% gross)", Min: 0, Max: 120},
	{Key: "male", Column: "average_value_School enrollment, secondary, male (% gross)", Min: 0, Max: 120},
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// setDefaults registers scalar defaults with v so that environment
// variables can override keys absent from the config file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("series.start_year", DefaultStartYear)
	v.SetDefault("series.end_year", DefaultEndYear)
	v.SetDefault("series.actual_cutoff_year", DefaultActualCutoffYear)
	v.SetDefault("series.projection_years", DefaultProjectionYears)
	v.SetDefault("series.damping_rate", DefaultDampingRate)

	v.SetDefault("input.files", []string{})
	v.SetDefault("input.group_column", DefaultGroupColumn)
	v.SetDefault("input.year_column", DefaultYearColumn)
	v.SetDefault("input.delimiter", DefaultDelimiter)

	v.SetDefault("decade.min_year", DefaultDecadeMinYear)
	v.SetDefault("decade.hide", []string{"2020"})

	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("log.output_paths", []string{"stderr"})
}

// ApplyDefaults fills zero-value fields of cfg. Explicit values win.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Series.StartYear == 0 {
		cfg.Series.StartYear = DefaultStartYear
	}
	if cfg.Series.EndYear == 0 {
		cfg.Series.EndYear = DefaultEndYear
	}
	if cfg.Series.ActualCutoffYear == 0 {
		cfg.Series.ActualCutoffYear = DefaultActualCutoffYear
	}
	if cfg.Series.ProjectionYears == nil {
		cfg.Series.ProjectionYears = append([]int(nil), DefaultProjectionYears...)
	}
	if cfg.Series.DampingRate == 0 {
		cfg.Series.DampingRate = DefaultDampingRate
	}
	if len(cfg.Series.Metrics) == 0 {
		cfg.Series.Metrics = append([]MetricConfig(nil), DefaultMetrics...)
	}

	if cfg.Input.GroupColumn == "" {
		cfg.Input.GroupColumn = DefaultGroupColumn
	}
	if cfg.Input.YearColumn == "" {
		cfg.Input.YearColumn = DefaultYearColumn
	}
	if cfg.Input.Delimiter == "" {
		cfg.Input.Delimiter = DefaultDelimiter
	}

	if cfg.Decade.MinYear == 0 {
		cfg.Decade.MinYear = DefaultDecadeMinYear
	}
	if cfg.Decade.Hide == nil {
		cfg.Decade.Hide = []string{"2020"}
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if len(cfg.Log.OutputPaths) == 0 {
		cfg.Log.OutputPaths = []string{"stderr"}
	}
}
