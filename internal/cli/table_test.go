package cli

import (
	"strings"
	"testing"
)

func TestNewTable(t *testing.T) {
	table := NewTable([]string{"Step", "Hex", "Ratio"})

	if table == nil {
		t.Fatal("NewTable returned nil")
	}
	if len(table.headers) != 3 {
		t.Errorf("Expected 3 headers, got %d", len(table.headers))
	}
	if table.padding != 2 {
		t.Errorf("Expected padding of 2, got %d", table.padding)
	}
}

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"Step", "Hex"})

	table.AddRow([]string{"50", "#fafafa"})
	table.AddRow([]string{"100"})
	table.AddRow([]string{"200", "#e5e5e5", "extra"})

	if len(table.rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(table.rows))
	}
	if len(table.rows[1]) != 2 || table.rows[1][1] != "" {
		t.Errorf("Expected short row to be padded, got %q", table.rows[1])
	}
	if len(table.rows[2]) != 2 {
		t.Errorf("Expected long row to be truncated, got %q", table.rows[2])
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"Step", "Hex", "Ratio"})
	table.AlignRight(2)
	table.AddRow([]string{"50", "#fafafa", "1.04"})
	table.AddRow([]string{"950", "#0a0a0a", "19.80"})

	lines := strings.Split(table.Render(), "\n")
	if len(lines) < 4 {
		t.Fatalf("Expected at least 4 lines, got %d", len(lines))
	}

	if !strings.HasPrefix(lines[0], "Step") {
		t.Errorf("header line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "---") {
		t.Errorf("Expected separator line with dashes, got: %q", lines[1])
	}
	if len(lines[1]) != len(lines[3]) {
		t.Errorf("separator (%d) and widest row (%d) should be the same width", len(lines[1]), len(lines[3]))
	}
	if !strings.HasSuffix(lines[2], " 1.04") {
		t.Errorf("right-aligned column not padded on the left: %q", lines[2])
	}
}

func TestTableRenderEmpty(t *testing.T) {
	table := NewTable(nil)
	if output := table.Render(); output != "" {
		t.Errorf("Expected empty string for empty table, got: %q", output)
	}
}

func TestTableRenderNoRows(t *testing.T) {
	output := NewTable([]string{"Column1", "Column2"}).Render()

	if !strings.Contains(output, "Column1") {
		t.Error("Output should contain headers even without rows")
	}
	if lines := strings.Split(strings.TrimSpace(output), "\n"); len(lines) != 2 {
		t.Errorf("Expected header and separator lines, got %d", len(lines))
	}
}

func TestTableWideCharacters(t *testing.T) {
	table := NewTable([]string{"Name", "Mark"})
	table.AddRow([]string{"active", "★"})
	table.AddRow([]string{"inactive", ""})

	output := table.Render()
	if !strings.Contains(output, "★") {
		t.Error("Output should contain ★")
	}
}

func TestPadding(t *testing.T) {
	tests := []struct {
		input     string
		width     int
		wantRight string
		wantLeft  string
	}{
		{"test", 6, "test  ", "  test"},
		{"hello", 5, "hello", "hello"},
		{"world", 3, "world", "world"},
		{"", 2, "  ", "  "},
	}

	for _, tt := range tests {
		if got := padRight(tt.input, tt.width); got != tt.wantRight {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.wantRight)
		}
		if got := padLeft(tt.input, tt.width); got != tt.wantLeft {
			t.Errorf("padLeft(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.wantLeft)
		}
	}
}
