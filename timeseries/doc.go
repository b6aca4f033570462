// Package timeseries provides the observation and point types used across
// gendergap, along with interpolation and CSV loading.
//
// # Observations
//
// An Observation is one raw row keyed by group (region or country) and year:
//
//	o := timeseries.Observation{
//	    Group:   "South Asia",
//	    Year:    1990,
//	    Metrics: map[string]float64{"female": 31.4, "male": 48.9},
//	}
//	v, ok := o.Value("female") // ok is false for absent or non-finite values
//
// Missing values are never stored as zero; they are simply absent from Metrics.
//
// # Points and Interpolation
//
// A Point is one year of a reconstructed series. Interpolate samples a sorted
// slice of points at any integer year:
//
//	timeseries.SortPoints(points)
//	v := timeseries.Interpolate(points, 2005, "female")
//
// Years before the first point and after the last point take the boundary
// values unchanged.
//
// # Loading from CSV
//
// Load observations with explicit metric columns:
//
//	opts := timeseries.DefaultCSVOptions()
//	opts.Metrics = map[string]string{
//	    "female": "average_value_School enrollment, secondary, female (% gross)",
//	    "male":   "average_value_School enrollment, secondary, male (% gross)",
//	}
//	obs, err := timeseries.LoadCSV("gender_regions_decades.csv", opts)
//
// Leaving Metrics empty loads every non-group, non-year column keyed by its
// header. Several files can be loaded concurrently:
//
//	obs, err := timeseries.LoadCSVFiles(ctx, []string{"a.csv", "b.csv"}, opts)
//
// # Column Pairing
//
// PairMetricColumns matches female and male indicator columns:
//
//	pairs, singles := timeseries.PairMetricColumns(header)
package timeseries
