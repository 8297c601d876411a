package report

import (
	"strings"
	"testing"
)

func TestSummary_Render(t *testing.T) {
	s := &Summary{
		OutputDir: "public/data",
		DateStart: "2025-03-01",
		DateEnd:   "2025-12-31",
		Families: []FamilyLine{
			{Family: "biometric", Files: 4, Records: 1861108, MissingDates: 12, MissingPercent: 0.000645},
		},
		Artifacts: []ArtifactLine{
			{Name: "state_summary.json", Records: 36, Bytes: 5400},
		},
		DailyRows: 250000,
		SampledTo: 100000,
		States:    36,
		Districts: 980,
	}

	out := s.Render()

	for _, want := range []string{
		"| biometric |     4 | 1,861,108 |            12 |     0.00% |",
		"Unified daily rows: 250,000",
		"Sampled daily rows: 100,000",
		"Date range: 2025-03-01 to 2025-12-31",
		"| state_summary.json |      36 | 5.4 kB |",
		"Output directory: public/data",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q:\n%s", want, out)
		}
	}
}

func TestSummary_Render_NoSampling(t *testing.T) {
	s := &Summary{DailyRows: 10, SampledTo: 10}

	out := s.Render()
	if strings.Contains(out, "Sampled daily rows") {
		t.Errorf("sampling line should be omitted when nothing was dropped:\n%s", out)
	}

	if !strings.Contains(out, "Date range: n/a to n/a") {
		t.Errorf("missing n/a date range:\n%s", out)
	}
}
