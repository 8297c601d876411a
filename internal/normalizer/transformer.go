package normalizer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"uidaiprep/internal/models"
)

// ErrUnknownTarget is returned when a mapping names a column Measures does not have.
var ErrUnknownTarget = errors.New("mapping target is not a canonical measure")

// dateLayouts are tried in order. The UIDAI exports use DD-MM-YYYY; day and
// month may be written with one or two digits.
var dateLayouts = []string{
	"2-1-2006",
	"2006-1-2",
	"2/1/2006",
	"2006/1/2",
	"2006-1-2 15:04:05",
	"2006-1-2T15:04:05",
	time.RFC3339,
}

// Transformer handles date parsing and field renaming.
type Transformer struct {
	layouts []string
}

// NewTransformer creates a new transformer instance.
func NewTransformer() *Transformer {
	return &Transformer{layouts: dateLayouts}
}

// ParseDate converts date text into a Date. Unrecognized text yields MissingDate.
func (t *Transformer) ParseDate(s string) models.Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.MissingDate
	}

	for _, layout := range t.layouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return models.DateOf(ts)
		}
	}

	return models.MissingDate
}

// Rename applies the family mapping to raw values.
func (t *Transformer) Rename(mappings []FieldMapping, values map[string]int64) (models.Measures, error) {
	var m models.Measures

	for _, fm := range mappings {
		field := m.Field(fm.Target)
		if field == nil {
			return models.Measures{}, fmt.Errorf("%w: %s", ErrUnknownTarget, fm.Target)
		}

		*field = values[fm.Source]
	}

	return m, nil
}

// Transform converts one raw row into a normalized record.
func (t *Transformer) Transform(mappings []FieldMapping, raw models.RawRecord) (models.Record, error) {
	measures, err := t.Rename(mappings, raw.Values)
	if err != nil {
		return models.Record{}, err
	}

	return models.Record{
		Date:     t.ParseDate(raw.Date),
		State:    raw.State,
		District: raw.District,
		Pincode:  raw.Pincode,
		Measures: measures,
	}, nil
}
