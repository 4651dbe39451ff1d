package textutil

import (
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"page break removed", "line one\n\n===PAGE 2===\n\nline two", "line one\nline two"},
		{"nbsp normalized", "Balance $500", "Balance $500"},
		{"space runs collapsed", "Credit Limit      $10,000", "Credit Limit $10,000"},
		{"newlines preserved", "a\nb\nc", "a\nb\nc"},
		{"private use glyph stripped", "Account Info", " Account Info"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.input)
			if got != tt.expected {
				t.Errorf("Clean(%q): got %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
