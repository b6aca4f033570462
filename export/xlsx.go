package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/sartorproj/gendergap/series"
)

// SummarySheet is the name of the workbook's first sheet.
const SummarySheet = "Summary"

const maxSheetName = 31

// WriteXLSX writes a workbook with a Summary sheet followed by one sheet per
// group, sorted by name.
func WriteXLSX(w io.Writer, set series.Set, keys []string) error {
	f, err := Workbook(set, keys)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// Workbook builds the workbook written by WriteXLSX.
func Workbook(set series.Set, keys []string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("renaming default sheet: %w", err)
	}

	summary := [][]interface{}{{"group", "sheet", "condition", "actual_points", "first_year", "last_year"}}
	used := map[string]bool{strings.ToLower(SummarySheet): true}

	for _, g := range set.Groups() {
		l := set[g]
		sheet := SheetName(g, used)
		if _, err := f.NewSheet(sheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("adding sheet for %s: %w", g, err)
		}

		rows := make([][]interface{}, 0, len(l.Yearly)+1)
		header := make([]interface{}, 0, len(keys)+2)
		for _, h := range Header(keys)[1:] {
			header = append(header, h)
		}
		rows = append(rows, header)
		for _, fr := range l.Yearly {
			row := make([]interface{}, 0, len(keys)+2)
			row = append(row, fr.Year)
			for _, k := range keys {
				if v, ok := fr.Values[k]; ok {
					row = append(row, v)
				} else {
					row = append(row, nil)
				}
			}
			rows = append(rows, append(row, fr.Projected))
		}
		if err := writeRows(f, sheet, rows); err != nil {
			f.Close()
			return nil, err
		}

		first, last := interface{}(nil), interface{}(nil)
		if len(l.Actual) > 0 {
			first, last = l.Actual[0].Year, l.Actual[len(l.Actual)-1].Year
		}
		summary = append(summary, []interface{}{g, sheet, string(l.Condition), len(l.Actual), first, last})
	}

	if err := writeRows(f, SummarySheet, summary); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetColWidth(SummarySheet, "A", "B", 32); err != nil {
		f.Close()
		return nil, fmt.Errorf("sizing summary columns: %w", err)
	}
	f.SetActiveSheet(0)
	return f, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for r, row := range rows {
		for c, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("sheet %s: %w", sheet, err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("sheet %s cell %s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}

// SheetName turns a group name into a valid, unused sheet name and records it
// in used. Excel forbids : \ / ? * [ ] and limits names to 31 characters;
// names are compared case-insensitively.
func SheetName(group string, used map[string]bool) string {
	base := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, strings.TrimSpace(group))
	base = strings.Trim(base, "'")
	if base == "" {
		base = "group"
	}
	base = truncateRunes(base, maxSheetName)

	name := base
	for n := 2; used[strings.ToLower(name)]; n++ {
		suffix := "~" + strconv.Itoa(n)
		name = truncateRunes(base, maxSheetName-len(suffix)) + suffix
	}
	used[strings.ToLower(name)] = true
	return name
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
