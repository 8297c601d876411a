package normalizer

import "uidaiprep/internal/models"

// FieldMapping renames one source measure onto its canonical column.
type FieldMapping struct {
	Source string
	Target string
}

// Mapping is the declarative rename table applied to each family.
var Mapping = map[models.Family][]FieldMapping{
	models.Demographic: {
		{Source: "demo_age_5_17", Target: models.DemoChild},
		{Source: "demo_age_17_", Target: models.DemoAdult},
	},
	models.Biometric: {
		{Source: "bio_age_5_17", Target: models.BioChild},
		{Source: "bio_age_17_", Target: models.BioAdult},
	},
	models.Enrolment: {
		{Source: "age_0_5", Target: models.EnrolInfant},
		{Source: "age_5_17", Target: models.EnrolChild},
		{Source: "age_18_greater", Target: models.EnrolAdult},
	},
}

// Targets returns the canonical measures produced for family.
func Targets(family models.Family) []string {
	var cols []string
	for _, m := range Mapping[family] {
		cols = append(cols, m.Target)
	}

	return cols
}
