package pipeline

import (
	"path/filepath"

	"uidaiprep/internal/models"
	"uidaiprep/internal/report"
)

// Summary converts a run result into the console report.
func (r *Result) Summary(outputDir string) *report.Summary {
	s := &report.Summary{
		OutputDir: outputDir,
		DailyRows: len(r.Daily),
		SampledTo: len(r.Sampled),
	}

	if r.Metadata != nil {
		s.States = r.Metadata.Coverage.States
		s.Districts = r.Metadata.Coverage.Districts

		if r.Metadata.DateRange.Start != nil {
			s.DateStart = *r.Metadata.DateRange.Start
			s.DateEnd = *r.Metadata.DateRange.End
		}
	}

	for _, family := range models.Families {
		table, ok := r.Tables[family]
		if !ok {
			continue
		}

		line := report.FamilyLine{Family: family.String(), Files: len(table.Files), Records: len(table.Records)}
		if n, ok := r.Normalized[family]; ok {
			line.MissingDates = n.Dates.Missing
			line.MissingPercent = n.Dates.Percent()
		}

		s.Families = append(s.Families, line)
	}

	for _, a := range r.Artifacts {
		s.Artifacts = append(s.Artifacts, report.ArtifactLine{
			Name:    filepath.Base(a.Path),
			Records: a.Records,
			Bytes:   a.Bytes,
		})
	}

	return s
}
