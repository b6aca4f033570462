package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sartorproj/gendergap/series"
	"github.com/sartorproj/gendergap/timeseries"
)

// Document is the JSON shape of a series.Set.
type Document struct {
	Groups []GroupDocument `json:"groups"`
}

// GroupDocument is one group of a Document.
type GroupDocument struct {
	Group     string             `json:"group"`
	Condition series.Condition   `json:"condition"`
	Actual    []timeseries.Point `json:"actual"`
	Extended  []timeseries.Point `json:"extended"`
	Yearly    []series.Frame     `json:"yearly"`
}

// NewDocument converts set into a Document with groups sorted by name.
// Slices are never nil so empty groups encode as [].
func NewDocument(set series.Set) Document {
	doc := Document{Groups: make([]GroupDocument, 0, len(set))}
	for _, g := range set.Groups() {
		l := set[g]
		doc.Groups = append(doc.Groups, GroupDocument{
			Group:     g,
			Condition: l.Condition,
			Actual:    nonNil(l.Actual),
			Extended:  nonNil(l.Extended),
			Yearly:    nonNil(l.Yearly),
		})
	}
	return doc
}

// WriteJSON writes set as an indented Document.
func WriteJSON(w io.Writer, set series.Set) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(set)); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

func nonNil(points []timeseries.Point) []timeseries.Point {
	if points == nil {
		return []timeseries.Point{}
	}
	return points
}
