package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gendergap/timeseries"
)

func row(group string, year int, metrics map[string]float64) timeseries.Observation {
	return timeseries.Observation{Group: group, Year: year, Metrics: metrics}
}

func TestDecadeLabel(t *testing.T) {
	tests := []struct {
		year int
		want string
	}{
		{1970, "1970-1979"},
		{1979, "1970-1979"},
		{1985, "1980-1989"},
		{2000, "2000-2009"},
		{2023, "2020-2029"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DecadeLabel(tt.year), "year %d", tt.year)
	}
}

func TestDecadeLabelFrom(t *testing.T) {
	of := DecadeLabelFrom(1970)

	_, ok := of(1969)
	assert.False(t, ok)

	label, ok := of(1970)
	require.True(t, ok)
	assert.Equal(t, "1970-1979", label)
}

func TestAggregateMean(t *testing.T) {
	rows := []timeseries.Observation{
		row("Kenya", 1971, map[string]float64{"life": 50, "school": 10}),
		row("Kenya", 1975, map[string]float64{"life": 54}),
		row("Kenya", 1978, map[string]float64{"life": math.NaN()}),
		row("Kenya", 1985, map[string]float64{"life": 60}),
		row("Kenya", 1965, map[string]float64{"life": 1000}),
	}
	idx := AggregateByGroupAndDecade(rows, DecadeLabelFrom(1970))

	v, ok := idx.Mean("Kenya", "1970-1979", "life")
	require.True(t, ok)
	assert.Equal(t, 52.0, v)

	v, ok = idx.Mean("Kenya", "1970-1979", "school")
	require.True(t, ok)
	assert.Equal(t, 10.0, v)

	v, ok = idx.Mean("Kenya", "1980-1989", "life")
	require.True(t, ok)
	assert.Equal(t, 60.0, v)

	_, ok = idx.Mean("Kenya", "1960-1969", "life")
	assert.False(t, ok, "years before the floor are dropped")
}

func TestAggregateMeanAbsentIsNotZero(t *testing.T) {
	rows := []timeseries.Observation{
		row("Chad", 1990, map[string]float64{"life": math.NaN()}),
		row("Chad", 1991, map[string]float64{"school": 5}),
	}
	idx := AggregateByGroupAndDecade(rows, DecadeLabelFrom(1970))

	tests := []struct {
		name                  string
		group, decade, metric string
	}{
		{"only nan values", "Chad", "1990-1999", "life"},
		{"metric never seen", "Chad", "1990-1999", "fertility"},
		{"decade never seen", "Chad", "2000-2009", "school"},
		{"group never seen", "Mali", "1990-1999", "school"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := idx.Mean(tt.group, tt.decade, tt.metric)
			assert.False(t, ok)
			assert.Zero(t, v)
		})
	}

	var nilIdx *DecadeIndex
	_, ok := nilIdx.Mean("Chad", "1990-1999", "school")
	assert.False(t, ok)
}

func TestDecadesSortedAndExcluded(t *testing.T) {
	rows := []timeseries.Observation{
		row("A", 2021, map[string]float64{"x": 1}),
		row("A", 1995, map[string]float64{"x": 1}),
		row("B", 1972, map[string]float64{"x": 1}),
		row("B", 2005, map[string]float64{"x": 1}),
	}
	idx := AggregateByGroupAndDecade(rows, DecadeLabelFrom(1970))

	assert.Equal(t, []string{"1970-1979", "1990-1999", "2000-2009", "2020-2029"}, idx.Decades())
	assert.Equal(t, []string{"1970-1979", "1990-1999", "2000-2009"}, idx.Decades("2020"))
	assert.Equal(t, []string{"A", "B"}, idx.Groups())
}

func TestExtent(t *testing.T) {
	rows := []timeseries.Observation{
		row("A", 1990, map[string]float64{"x": 10}),
		row("B", 1991, map[string]float64{"x": 30}),
		row("C", 1992, map[string]float64{"x": 20}),
		row("D", 1993, map[string]float64{"y": 99}),
	}
	idx := AggregateByGroupAndDecade(rows, DecadeLabelFrom(1970))

	lo, hi, ok := idx.Extent("1990-1999", "x", nil)
	require.True(t, ok)
	assert.Equal(t, 10.0, lo)
	assert.Equal(t, 30.0, hi)

	_, _, ok = idx.Extent("1980-1989", "x", nil)
	assert.False(t, ok)
}

func TestExtentSkipsRejectedGroups(t *testing.T) {
	rows := []timeseries.Observation{
		row("World", 2001, map[string]float64{"x": 1}),
		row("Kenya", 2002, map[string]float64{"x": 5}),
		row("Chad", 2003, map[string]float64{"x": 7}),
	}
	idx := AggregateByGroupAndDecade(rows, DecadeLabelFrom(1970))

	lo, hi, ok := idx.Extent("2000-2009", "x", func(g string) bool { return !IsAggregateName(g) })
	require.True(t, ok)
	assert.Equal(t, 5.0, lo)
	assert.Equal(t, 7.0, hi)

	_, _, ok = idx.Extent("2000-2009", "x", func(string) bool { return false })
	assert.False(t, ok)
}
