package report

import (
	"strings"
	"testing"
)

func TestTable_Render(t *testing.T) {
	tests := []struct {
		name     string
		table    Table
		expected string
	}{
		{
			name: "Basic table",
			table: Table{
				Headers: []string{"Header 1", "Header 2"},
				Rows:    [][]string{{"val 1", "val 2"}},
			},
			expected: `
| Header 1 | Header 2 |
| -------- | -------- |
| val 1    | val 2    |`,
		},
		{
			name: "Trim spaces in cells",
			table: Table{
				Headers: []string{"  Col A  ", "B"},
				Rows:    [][]string{{"  val A  ", "b"}},
			},
			expected: `
| Col A | B   |
| ----- | --- |
| val A | b   |`,
		},
		{
			name: "Right aligned numbers",
			table: Table{
				Headers: []string{"State", "Records"},
				Right:   map[int]bool{1: true},
				Rows:    [][]string{{"Goa", "7"}, {"Kerala", "1,024"}},
			},
			expected: `
| State  | Records |
| ------ | ------: |
| Goa    |       7 |
| Kerala |   1,024 |`,
		},
		{
			name: "Padded right aligned cells",
			table: Table{
				Headers: []string{"Name", "  Total  "},
				Right:   map[int]bool{1: true},
				Rows:    [][]string{{"Goa    ", "   12"}},
			},
			expected: `
| Name | Total |
| ---- | ----: |
| Goa  |    12 |`,
		},
		{
			name: "Wide characters",
			table: Table{
				Headers: []string{"名前", "N"},
				Rows:    [][]string{{"東京都", "1"}},
			},
			expected: `
| 名前   | N   |
| ------ | --- |
| 東京都 | 1   |`,
		},
		{
			name: "Ragged rows are padded",
			table: Table{
				Headers: []string{"A"},
				Rows:    [][]string{{"x", "extra"}},
			},
			expected: `
| A   |       |
| --- | ----- |
| x   | extra |`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.table.Render()
			want := strings.TrimPrefix(tt.expected, "\n")

			if got != want {
				t.Errorf("Render() mismatch.\nExpected:\n%s\nGot:\n%s", want, got)
			}
		})
	}
}

func TestTable_Render_Empty(t *testing.T) {
	tbl := &Table{}
	if got := tbl.Render(); got != "" {
		t.Errorf("Render() of empty table = %q, want empty", got)
	}
}
