package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// FamilyLine summarizes one loaded and normalized family.
type FamilyLine struct {
	Family         string
	Files          int
	Records        int
	MissingDates   int
	MissingPercent float64
}

// ArtifactLine summarizes one written file.
type ArtifactLine struct {
	Name    string
	Records int
	Bytes   int64
}

// Summary is everything printed at the end of a run.
type Summary struct {
	OutputDir string
	DateStart string
	DateEnd   string
	Families  []FamilyLine
	Artifacts []ArtifactLine
	DailyRows int
	States    int
	Districts int
	SampledTo int
}

// Families renders the per-family load table.
func Families(lines []FamilyLine) string {
	t := &Table{
		Headers: []string{"Family", "Files", "Records", "Missing dates", "Missing %"},
		Right:   map[int]bool{1: true, 2: true, 3: true, 4: true},
	}

	for _, l := range lines {
		t.Rows = append(t.Rows, []string{
			l.Family,
			humanize.Comma(int64(l.Files)),
			humanize.Comma(int64(l.Records)),
			humanize.Comma(int64(l.MissingDates)),
			fmt.Sprintf("%.2f%%", l.MissingPercent),
		})
	}

	return t.Render()
}

// Artifacts renders the written-files table.
func Artifacts(lines []ArtifactLine) string {
	t := &Table{
		Headers: []string{"File", "Records", "Size"},
		Right:   map[int]bool{1: true, 2: true},
	}

	for _, l := range lines {
		t.Rows = append(t.Rows, []string{
			l.Name,
			humanize.Comma(int64(l.Records)),
			humanize.Bytes(uint64(l.Bytes)),
		})
	}

	return t.Render()
}

// Render formats the whole run summary.
func (s *Summary) Render() string {
	var sb strings.Builder

	sb.WriteString("DATA PREPARATION COMPLETE\n\n")
	sb.WriteString(Families(s.Families))
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "Unified daily rows: %s\n", humanize.Comma(int64(s.DailyRows)))

	if s.SampledTo > 0 && s.SampledTo < s.DailyRows {
		fmt.Fprintf(&sb, "Sampled daily rows: %s\n", humanize.Comma(int64(s.SampledTo)))
	}

	fmt.Fprintf(&sb, "Date range: %s to %s\n", orNone(s.DateStart), orNone(s.DateEnd))
	fmt.Fprintf(&sb, "States: %d  Districts: %d\n\n", s.States, s.Districts)

	sb.WriteString(Artifacts(s.Artifacts))
	fmt.Fprintf(&sb, "\n\nOutput directory: %s\n", s.OutputDir)

	return sb.String()
}

func orNone(s string) string {
	if s == "" {
		return "n/a"
	}

	return s
}
