package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sartorproj/gendergap/series"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown export format")

// Format names an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Formats lists the supported formats.
var Formats = []Format{FormatJSON, FormatCSV, FormatXLSX}

// ParseFormat parses a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Write encodes set to w. keys fixes the metric column order of tabular
// formats; JSON writes every metric of each frame.
func Write(w io.Writer, set series.Set, keys []string, format Format) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, set)
	case FormatCSV:
		return WriteCSV(w, set, keys)
	case FormatXLSX:
		return WriteXLSX(w, set, keys)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
