package extractor

import (
	"strings"
	"testing"
)

func TestLooksLikeReportText(t *testing.T) {
	tests := []struct {
		name     string
		pages    []string
		expected bool
	}{
		{
			"real report text",
			[]string{"Your Credit Report Summary\nAccount Type: Revolving\nBalance $500 Credit Limit $1,000"},
			true,
		},
		{
			"too short",
			[]string{"credit"},
			false,
		},
		{
			"readable but no report vocabulary",
			[]string{strings.Repeat("the quick brown fox jumps over the lazy dog ", 3)},
			false,
		},
		{
			"binary garbage",
			[]string{strings.Repeat("�Ӓ☃", 60)},
			false,
		},
		{
			"empty",
			nil,
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := looksLikeReportText(tt.pages)
			if got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLooksLikeReportText_MostlyGarbageWithVocabulary(t *testing.T) {
	// Vocabulary alone is not enough; the readable-character ratio gate
	// still applies.
	page := "credit " + strings.Repeat("�", 500)
	if looksLikeReportText([]string{page}) {
		t.Error("expected low-quality text to be rejected despite vocabulary hit")
	}
}

func TestExtractText_MissingFile(t *testing.T) {
	if _, err := ExtractText("/nonexistent/report.pdf"); err == nil {
		t.Error("expected error for missing file")
	}
}
