package normalizer

import (
	"errors"
	"fmt"
	"slices"

	"uidaiprep/internal/models"
)

// Validation errors.
var (
	ErrUnknownFamily    = errors.New("no field mapping for family")
	ErrUnmappedColumn   = errors.New("source column has no mapping")
	ErrDuplicateTarget  = errors.New("mapping target used twice")
	ErrForeignSource    = errors.New("mapping source is not a column of the family")
	ErrSourceMismatched = errors.New("raw record is missing a mapped source column")
)

// Validator checks mappings and raw rows before transformation.
type Validator struct {
	mapping map[models.Family][]FieldMapping
}

// NewValidator creates a new validator over the given mapping table.
func NewValidator(mapping map[models.Family][]FieldMapping) *Validator {
	return &Validator{mapping: mapping}
}

// ValidateMapping checks that family's mapping covers exactly its source columns.
func (v *Validator) ValidateMapping(family models.Family) error {
	mappings, ok := v.mapping[family]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFamily, family)
	}

	sources := family.SourceColumns()
	targets := make(map[string]bool, len(mappings))
	mapped := make(map[string]bool, len(mappings))

	for _, m := range mappings {
		if !slices.Contains(sources, m.Source) {
			return fmt.Errorf("%w: %s.%s", ErrForeignSource, family, m.Source)
		}

		if targets[m.Target] {
			return fmt.Errorf("%w: %s", ErrDuplicateTarget, m.Target)
		}

		targets[m.Target] = true
		mapped[m.Source] = true
	}

	for _, col := range sources {
		if !mapped[col] {
			return fmt.Errorf("%w: %s.%s", ErrUnmappedColumn, family, col)
		}
	}

	return nil
}

// ValidateRecord checks that a raw row carries every mapped source column.
func (v *Validator) ValidateRecord(family models.Family, raw models.RawRecord, index int) error {
	for _, m := range v.mapping[family] {
		if _, ok := raw.Values[m.Source]; !ok {
			return fmt.Errorf("%w at index %d: %s", ErrSourceMismatched, index, m.Source)
		}
	}

	return nil
}
