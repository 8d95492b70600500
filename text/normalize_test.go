package text

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", "hello"},
		{"internal runs", "hello   world", "hello world"},
		{"tabs and newlines", "a\tb\nc", "a b c"},
		{"leading and trailing", "  padded  ", "padded"},
		{"only whitespace", " \t\n ", ""},
		{"empty", "", ""},
		{"zero-width space removed", "he\u200bllo", "hello"},
		{"zero-width joiner removed", "ab\u200dcd", "abcd"},
		{"nfc composition", "e\u0301", "\u00e9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.input); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCollapse(t *testing.T) {
	if got := Collapse("  a   b \t c "); got != "a b c" {
		t.Errorf("Collapse() = %q, want %q", got, "a b c")
	}
}

func TestJoinCells(t *testing.T) {
	tests := []struct {
		name  string
		cells []string
		want  string
	}{
		{"all populated", []string{"a", "b", "c"}, "a b c"},
		{"skips empty", []string{"a", "", "c"}, "a c"},
		{"all empty", []string{"", ""}, ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JoinCells(tt.cells); got != tt.want {
				t.Errorf("JoinCells(%v) = %q, want %q", tt.cells, got, tt.want)
			}
		})
	}
}
