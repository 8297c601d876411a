// Package normalizer parses dates and renames family measures onto the canonical vocabulary.
package normalizer

import (
	"fmt"

	"uidaiprep/internal/models"
)

// DateStats counts date parse outcomes for one family.
type DateStats struct {
	Total   int
	Missing int
}

// Percent returns the share of missing dates, 0 for an empty table.
func (s DateStats) Percent() float64 {
	if s.Total == 0 {
		return 0
	}

	return float64(s.Missing) / float64(s.Total) * 100
}

// Result is the normalized table of one family.
type Result struct {
	Family  models.Family
	Records []models.Record
	Dates   DateStats
}

// Processor handles data processing and transformation.
type Processor struct {
	validator   *Validator
	transformer *Transformer
	mapping     map[models.Family][]FieldMapping
}

// NewProcessor creates a processor using the default Mapping.
func NewProcessor() *Processor {
	return NewProcessorWithMapping(Mapping)
}

// NewProcessorWithMapping creates a processor over a custom mapping table.
func NewProcessorWithMapping(mapping map[models.Family][]FieldMapping) *Processor {
	return &Processor{
		validator:   NewValidator(mapping),
		transformer: NewTransformer(),
		mapping:     mapping,
	}
}

// Process normalizes every raw row of family. Unparseable dates are counted, not rejected.
func (p *Processor) Process(family models.Family, raw []models.RawRecord) (*Result, error) {
	if err := p.validator.ValidateMapping(family); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	mappings := p.mapping[family]
	result := &Result{
		Family:  family,
		Records: make([]models.Record, 0, len(raw)),
		Dates:   DateStats{Total: len(raw)},
	}

	for i, r := range raw {
		if err := p.validator.ValidateRecord(family, r, i); err != nil {
			return nil, fmt.Errorf("validation failed: %w", err)
		}

		rec, err := p.transformer.Transform(mappings, r)
		if err != nil {
			return nil, fmt.Errorf("transformation failed: %w", err)
		}

		if rec.Date.IsMissing() {
			result.Dates.Missing++
		}

		result.Records = append(result.Records, rec)
	}

	return result, nil
}
