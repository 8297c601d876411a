package normalizer

import (
	"errors"
	"testing"

	"uidaiprep/internal/models"
)

func TestValidator_ValidateMapping_Default(t *testing.T) {
	v := NewValidator(Mapping)

	for _, family := range models.Families {
		if err := v.ValidateMapping(family); err != nil {
			t.Errorf("ValidateMapping(%s) returned unexpected error: %v", family, err)
		}
	}
}

func TestValidator_ValidateMapping_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mapping []FieldMapping
		wantErr error
	}{
		{
			name:    "Unmapped column",
			mapping: []FieldMapping{{Source: "bio_age_5_17", Target: models.BioChild}},
			wantErr: ErrUnmappedColumn,
		},
		{
			name: "Duplicate target",
			mapping: []FieldMapping{
				{Source: "bio_age_5_17", Target: models.BioChild},
				{Source: "bio_age_17_", Target: models.BioChild},
			},
			wantErr: ErrDuplicateTarget,
		},
		{
			name: "Foreign source",
			mapping: []FieldMapping{
				{Source: "demo_age_5_17", Target: models.BioChild},
			},
			wantErr: ErrForeignSource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValidator(map[models.Family][]FieldMapping{models.Biometric: tt.mapping})

			err := v.ValidateMapping(models.Biometric)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateMapping() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidator_ValidateMapping_UnknownFamily(t *testing.T) {
	v := NewValidator(map[models.Family][]FieldMapping{})

	if err := v.ValidateMapping(models.Enrolment); !errors.Is(err, ErrUnknownFamily) {
		t.Errorf("ValidateMapping() error = %v, want ErrUnknownFamily", err)
	}
}

func TestValidator_ValidateRecord(t *testing.T) {
	v := NewValidator(Mapping)

	raw := models.RawRecord{Values: map[string]int64{"age_0_5": 1, "age_5_17": 1}}

	if err := v.ValidateRecord(models.Enrolment, raw, 4); !errors.Is(err, ErrSourceMismatched) {
		t.Errorf("ValidateRecord() error = %v, want ErrSourceMismatched", err)
	}

	raw.Values["age_18_greater"] = 0
	if err := v.ValidateRecord(models.Enrolment, raw, 4); err != nil {
		t.Errorf("ValidateRecord() returned unexpected error: %v", err)
	}
}
