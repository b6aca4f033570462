// Package main walks through series building, gaps and decade averages on
// regional secondary school enrollment data.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sartorproj/gendergap/export"
	"github.com/sartorproj/gendergap/internal/config"
	"github.com/sartorproj/gendergap/internal/logging"
	"github.com/sartorproj/gendergap/series"
	"github.com/sartorproj/gendergap/stats"
	"github.com/sartorproj/gendergap/timeseries"
)

const dataFile = "gender_regions_decades.csv"

// Years printed for every region
var checkpoints = []int{1990, 2020, 2025, 2035}

func main() {
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("gendergap demonstration - secondary school enrollment by region")
	fmt.Println(strings.Repeat("=", 80))

	dataDir := findDataDir()
	fmt.Printf("\nData directory: %s\n", dataDir)

	cfg := config.DefaultConfig()
	cfg.Input.Files = []string{filepath.Join(dataDir, dataFile)}

	logger, err := logging.NewLogger(logging.LogConfig{Level: "warn", Format: "console"})
	if err != nil {
		fmt.Printf("   Error creating logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	obs, err := timeseries.LoadCSVFiles(ctx, cfg.Input.Files, cfg.CSVOptions())
	if err != nil {
		fmt.Printf("   Error loading: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d observations\n", len(obs))

	set, err := series.Build(obs, cfg.SeriesConfig(), series.WithLogger(logger))
	if err != nil {
		fmt.Printf("   Error building series: %v\n", err)
		os.Exit(1)
	}

	for i, group := range set.Groups() {
		fmt.Printf("\n%s\n[%d/%d] %s\n%s\n", strings.Repeat("=", 80), i+1, len(set), group, strings.Repeat("=", 80))
		describe(set[group], cfg)
	}

	fmt.Printf("\n%s\nDECADE AVERAGES (female)\n%s\n", strings.Repeat("=", 80), strings.Repeat("=", 80))
	decades(obs, cfg)

	fmt.Printf("\n%s\nEXPORTING RESULTS\n%s\n", strings.Repeat("=", 80), strings.Repeat("=", 80))
	if err := write("gendergap_series.json", set, cfg, export.FormatJSON); err != nil {
		fmt.Printf("   Error: %v\n", err)
	}
	if err := write("gendergap_series.xlsx", set, cfg, export.FormatXLSX); err != nil {
		fmt.Printf("   Error: %v\n", err)
	}
	fmt.Println(strings.Repeat("=", 80))
}

// findDataDir locates the data directory
func findDataDir() string {
	for _, p := range []string{"data", "./data", "../data"} {
		if _, err := os.Stat(filepath.Join(p, dataFile)); err == nil {
			return p
		}
	}
	return "data"
}

// describe prints the condition, checkpoints and gaps of one region
func describe(l *series.Lookup, cfg *config.Config) {
	fmt.Printf("   Condition: %s (%d actual points)\n", l.Condition, len(l.Actual))
	if !l.HasData() {
		fmt.Println("   No complete observations; nothing to show")
		return
	}

	cutoff := cfg.Series.ActualCutoffYear
	for _, yr := range checkpoints {
		f, _ := l.Frame(yr)
		gap, ok := stats.Gap(f, "female", "male", cutoff)
		if !ok {
			continue
		}
		fmt.Printf("   %d  girls %6.1f  boys %6.1f  %s\n", f.Year, f.Values["female"], f.Values["male"], gap)
	}
}

func decades(obs []timeseries.Observation, cfg *config.Config) {
	idx := stats.AggregateByGroupAndDecade(obs, stats.DecadeLabelFrom(cfg.Decade.MinYear))
	for _, dec := range idx.Decades(cfg.Decade.Hide...) {
		lo, hi, ok := idx.Extent(dec, "female", nil)
		if !ok {
			fmt.Printf("   %s  no data\n", dec)
			continue
		}
		fmt.Printf("   %s  min %6.1f  max %6.1f\n", dec, lo, hi)
	}
}

func write(path string, set series.Set, cfg *config.Config, format export.Format) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := export.Write(f, set, cfg.MetricKeys(), format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("Exported %d regions to %s\n", len(set), path)
	return nil
}
