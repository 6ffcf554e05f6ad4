package output

import (
	"strings"
	"testing"
)

func TestVisualLen(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"ascii", "Acme Corp", 9},
		{"ansi color", "\x1b[31murgent\x1b[0m", 6},
		{"nested ansi", "\x1b[1m\x1b[34m4.2\x1b[0m", 3},
		{"wide", "株式会社", 8},
		{"mixed", "Acme 成長", 9},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := visualLen(tc.input); got != tc.want {
				t.Errorf("visualLen(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestPadding(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(string, int) string
		input string
		width int
		want  string
	}{
		{"pad short", pad, "hi", 5, "hi   "},
		{"pad exact", pad, "hello", 5, "hello"},
		{"pad never truncates", pad, "toolong", 3, "toolong"},
		{"pad wide", pad, "成長", 6, "成長  "},
		{"left short", padLeft, "3.1", 5, "  3.1"},
		{"left wide", padLeft, "成長", 5, " 成長"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.fn(tc.input, tc.width); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"Acme", 10, "Acme"},
		{"Acme", 0, "Acme"},
		{"Brand guidelines are written down", 10, "Brand gui…"},
		{"株式会社アクメ", 7, "株式会…"},
	}
	for _, tc := range tests {
		got := truncate(tc.input, tc.width)
		if got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.input, tc.width, got, tc.want)
		}
		if tc.width > 0 && visualLen(got) > tc.width {
			t.Errorf("truncate(%q, %d) is %d cells wide", tc.input, tc.width, visualLen(got))
		}
	}
}

func renderLines(t *testing.T, tbl *Table) []string {
	t.Helper()
	SetNoColor(true)
	t.Cleanup(func() { SetNoColor(false) })
	return strings.Split(strings.TrimRight(tbl.Render(), "\n"), "\n")
}

func TestTable_Render(t *testing.T) {
	tbl := NewTable("Company", "Avg")
	tbl.AddRow("Alice Corp", "4.2")
	tbl.AddRow("Bob Ltd", "2.8")

	lines := renderLines(t, tbl)
	if len(lines) != 4 {
		t.Fatalf("expected header, rule and 2 rows, got %d lines:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	if lines[0] != "Company     Avg" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "──────────  ───" {
		t.Errorf("rule = %q", lines[1])
	}
	if lines[3] != "Bob Ltd     2.8" {
		t.Errorf("row = %q", lines[3])
	}
	if tbl.Len() != 2 || tbl.String() != tbl.Render() {
		t.Error("Len/String mismatch")
	}
}

func TestTable_Empty(t *testing.T) {
	if out := NewTable().Render(); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
	if lines := renderLines(t, NewTable("ID")); len(lines) != 2 {
		t.Errorf("expected header and rule only, got %v", lines)
	}
}

func TestTable_RowShape(t *testing.T) {
	tbl := NewTable("A", "B")
	tbl.AddRow("only")
	tbl.AddRow("x", "y", "dropped")

	lines := renderLines(t, tbl)
	if strings.TrimRight(lines[2], " ") != "only" {
		t.Errorf("short row = %q", lines[2])
	}
	if strings.Contains(lines[3], "dropped") {
		t.Errorf("extra value rendered: %q", lines[3])
	}
}

func TestTable_AlignRight(t *testing.T) {
	tbl := NewTable("Company", "Average").AlignRight(1)
	tbl.AddRow("Acme", "3.1")
	tbl.AddRow("Blue Sky", "4.25")

	lines := renderLines(t, tbl)
	if !strings.HasSuffix(lines[2], "    3.1") {
		t.Errorf("average not right-aligned: %q", lines[2])
	}
	if visualLen(lines[2]) != visualLen(lines[3]) {
		t.Errorf("rows differ in width: %q vs %q", lines[2], lines[3])
	}
}

func TestTable_MaxCellWidth(t *testing.T) {
	tbl := NewTable("#", "Statement").MaxCellWidth(12)
	tbl.AddRow("Q1", "Our mission is written down and shared")

	lines := renderLines(t, tbl)
	if lines[2] != "Q1  Our mission…" {
		t.Errorf("row = %q", lines[2])
	}
}

func TestTable_WideColumnsAlign(t *testing.T) {
	tbl := NewTable("Company", "Phase")
	tbl.AddRow("株式会社アクメ", "growth")
	tbl.AddRow("Acme", "launch")

	lines := renderLines(t, tbl)
	first := visualLen(lines[2][:strings.Index(lines[2], "growth")])
	second := visualLen(lines[3][:strings.Index(lines[3], "launch")])
	if first != second {
		t.Errorf("columns misaligned: %d vs %d", first, second)
	}
}

func TestSetNoColor(t *testing.T) {
	SetNoColor(true)
	if strings.Contains(StyleHeader.Render("test"), "\x1b[") {
		t.Error("expected no ANSI codes after SetNoColor(true)")
	}
	SetNoColor(false)
	if IsNoColor() {
		t.Error("expected color to be re-enabled")
	}
}
