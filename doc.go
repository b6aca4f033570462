// Package gendergap turns sparse, per-region observations of paired
// girls/boys indicators into dense annual series with damped-trend
// projections.
//
// Given rows like "South Asia, 1990, female 28.6, male 46.3", gendergap
// fills every year of a fixed range by linear interpolation, extends the
// last observed trend into future years with a slope that decays
// exponentially, clamps every value into its metric's domain and flags each
// year after a cutoff as projected.
//
// # Quick Start
//
//	obs, _ := timeseries.LoadCSV("data/gender_regions_decades.csv", opts)
//	set, _ := series.Build(obs, cfg)
//	frame, _ := set["South Asia"].Frame(2025)
//	gap, _ := stats.Gap(frame, "female", "male", 2020)
//	fmt.Println(gap) // Girls ahead by 4.7 percentage points (projected)
//
// From the command line:
//
//	gendergap build --input data/gender_regions_decades.csv --format xlsx --out series.xlsx
//	gendergap gap --input data/gender_regions_decades.csv --group "South Asia" --year 2025
//
// # Packages
//
//   - timeseries: observations, points, interpolation and CSV loading
//   - projection: damped-trend model
//   - series: dense per-group series built from observations
//   - stats: decade averages, latest rows, gaps and aggregate names
//   - export: JSON, CSV and Excel output
package gendergap
