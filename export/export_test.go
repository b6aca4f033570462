package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sartorproj/gendergap/series"
	"github.com/sartorproj/gendergap/timeseries"
)

var keys = []string{"female", "male"}

func buildSet(t *testing.T) series.Set {
	t.Helper()
	cfg := series.Config{
		StartYear:        2000,
		EndYear:          2005,
		ActualCutoffYear: 2003,
		ProjectionYears:  []int{2005},
		DampingRate:      0.07,
		MetricDomain: map[string]series.Domain{
			"female": {Min: 0, Max: 120},
			"male":   {Min: 0, Max: 120},
		},
		MetricKeys: keys,
	}
	rows := []timeseries.Observation{
		{Group: "Peru", Year: 2000, Metrics: map[string]float64{"female": 40, "male": 50}},
		{Group: "Peru", Year: 2003, Metrics: map[string]float64{"female": 43, "male": 51.5}},
		{Group: "Chad", Year: 2001, Metrics: map[string]float64{"female": 10, "male": 20}},
		{Group: "Empty", Year: 2001, Metrics: map[string]float64{"female": 10}},
	}
	set, err := series.Build(rows, cfg)
	require.NoError(t, err)
	return set
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"json", "CSV", " xlsx "} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}

	_, err := ParseFormat("parquet")
	assert.True(t, errors.Is(err, ErrUnknownFormat))

	err = Write(&bytes.Buffer{}, series.Set{}, keys, Format("yaml"))
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, buildSet(t), keys, FormatJSON))

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Groups, 3)

	assert.Equal(t, "Chad", doc.Groups[0].Group)
	assert.Equal(t, series.ConditionFlat, doc.Groups[0].Condition)
	assert.Equal(t, "Empty", doc.Groups[1].Group)
	assert.Equal(t, series.ConditionNoData, doc.Groups[1].Condition)
	assert.Empty(t, doc.Groups[1].Yearly)

	peru := doc.Groups[2]
	require.Len(t, peru.Yearly, 6)
	assert.Len(t, peru.Extended, 3)
	assert.False(t, peru.Yearly[3].Projected)
	assert.True(t, peru.Yearly[4].Projected)
	assert.Equal(t, 43.0, peru.Yearly[3].Values["female"])

	assert.Contains(t, buf.String(), `"yearly": []`)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, buildSet(t), keys, FormatCSV))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1+6+6)

	assert.Equal(t, []string{"group", "year", "female", "male", "projected"}, records[0])
	assert.Equal(t, []string{"Chad", "2000", "10", "20", "false"}, records[1])
	assert.Equal(t, []string{"Peru", "2001", "41", "50.5", "false"}, records[8])
	assert.Equal(t, "true", records[12][4])
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, buildSet(t), keys, FormatXLSX))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SummarySheet, "Chad", "Empty", "Peru"}, f.GetSheetList())

	summary, err := f.GetRows(SummarySheet)
	require.NoError(t, err)
	require.Len(t, summary, 4)
	assert.Equal(t, []string{"group", "sheet", "condition", "actual_points", "first_year", "last_year"}, summary[0])
	assert.Equal(t, []string{"Empty", "Empty", "no_data", "0"}, summary[2])
	assert.Equal(t, []string{"Peru", "Peru", "complete", "2", "2000", "2003"}, summary[3])

	peru, err := f.GetRows("Peru")
	require.NoError(t, err)
	require.Len(t, peru, 7)
	assert.Equal(t, []string{"year", "female", "male", "projected"}, peru[0])
	assert.Equal(t, "2000", peru[1][0])
	assert.Equal(t, "40", peru[1][1])

	empty, err := f.GetRows("Empty")
	require.NoError(t, err)
	assert.Len(t, empty, 1)
}

func TestSheetName(t *testing.T) {
	used := map[string]bool{"summary": true}

	assert.Equal(t, "Europe & Central Asia", SheetName("Europe & Central Asia", used))
	assert.Equal(t, "Korea_ Dem_ People_s Rep_", SheetName("Korea: Dem/ People?s Rep*", used))
	assert.Equal(t, "summary~2", SheetName("summary", used))

	long := "Middle East, North Africa, Afghanistan & Pakistan"
	first := SheetName(long, used)
	second := SheetName(long, used)
	assert.Len(t, []rune(first), 31)
	assert.Len(t, []rune(second), 31)
	assert.True(t, strings.HasSuffix(second, "~2"))
	assert.NotEqual(t, first, second)

	assert.Equal(t, "group", SheetName("  ", used))
}
