// Package models defines the record types that flow through the preparation pipeline.
package models

// Family identifies one of the three record sources.
type Family string

// Record families.
const (
	Biometric   Family = "biometric"
	Demographic Family = "demographic"
	Enrolment   Family = "enrolment"
)

// Families lists every family in the order the pipeline processes them.
var Families = []Family{Demographic, Biometric, Enrolment}

// String returns the family name.
func (f Family) String() string {
	return string(f)
}

// Key columns shared by every family.
const (
	ColumnDate     = "date"
	ColumnState    = "state"
	ColumnDistrict = "district"
	ColumnPincode  = "pincode"
	ColumnMonth    = "month"
)

// SourceColumns returns the family-specific measure headers of the raw files.
func (f Family) SourceColumns() []string {
	switch f {
	case Demographic:
		return []string{"demo_age_5_17", "demo_age_17_"}
	case Biometric:
		return []string{"bio_age_5_17", "bio_age_17_"}
	case Enrolment:
		return []string{"age_0_5", "age_5_17", "age_18_greater"}
	default:
		return nil
	}
}
