// Package export writes a built series.Set as JSON, CSV or an Excel workbook.
//
// JSON carries every group with its actual, extended and yearly points. CSV
// has one row per yearly frame with the header
//
//	group,year,<metric...>,projected
//
// and the workbook holds a Summary sheet followed by one sheet per group.
// Groups are always written in name order.
package export
