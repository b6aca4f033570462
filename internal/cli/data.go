package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/sartorproj/gendergap/internal/logging"
	"github.com/sartorproj/gendergap/series"
	"github.com/sartorproj/gendergap/timeseries"
)

var (
	// ErrNoInput is returned when no CSV file was configured.
	ErrNoInput = errors.New("no input files; pass --input or set input.files")
	// ErrUnknownGroup is returned for a group absent from the input.
	ErrUnknownGroup = errors.New("unknown group")
	// ErrNoData is returned for a group whose series is empty.
	ErrNoData = errors.New("group has no complete observations")
)

// loadObservations reads the configured metric columns from every input file.
func (a *App) loadObservations(ctx context.Context) ([]timeseries.Observation, error) {
	return a.load(ctx, a.Config.CSVOptions())
}

// loadRaw reads every column from every input file, keyed by header.
func (a *App) loadRaw(ctx context.Context) ([]timeseries.Observation, error) {
	return a.load(ctx, a.Config.RawCSVOptions())
}

func (a *App) load(ctx context.Context, opts *timeseries.CSVOptions) ([]timeseries.Observation, error) {
	files := a.Config.Input.Files
	if len(files) == 0 {
		return nil, ErrNoInput
	}
	obs, err := timeseries.LoadCSVFiles(ctx, files, opts)
	if err != nil {
		return nil, fmt.Errorf("loading input: %w", err)
	}
	a.Logger.Debug("input loaded", logging.Int("files", len(files)), logging.Int("rows", len(obs)))
	return obs, nil
}

// buildSet loads the input and builds every group's series.
func (a *App) buildSet(ctx context.Context) (series.Set, error) {
	obs, err := a.loadObservations(ctx)
	if err != nil {
		return nil, err
	}
	return series.Build(obs, a.Config.SeriesConfig(), series.WithLogger(a.Logger))
}

// lookup builds the set and returns the series of group.
func (a *App) lookup(ctx context.Context, group string) (*series.Lookup, error) {
	set, err := a.buildSet(ctx)
	if err != nil {
		return nil, err
	}
	l, ok := set[group]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, group)
	}
	if !l.HasData() {
		return nil, fmt.Errorf("%w: %q", ErrNoData, group)
	}
	return l, nil
}

// metricColumn resolves a configured metric key to its source column.
// Anything else is taken as a column name.
func (a *App) metricColumn(name string) string {
	for _, m := range a.Config.Series.Metrics {
		if m.Key == name {
			return m.Column
		}
	}
	return name
}
