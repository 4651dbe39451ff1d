package textutil

import (
	"regexp"
	"strings"
)

// Page separators inserted by the text extraction step, e.g. "===PAGE 3===".
var pageBreakPattern = regexp.MustCompile(`(?i)\n+\s*===PAGE\s+\d+===\s*\n+`)

// Runs of spaces/tabs (newlines preserved).
var spaceRunPattern = regexp.MustCompile(`[ \t]{2,}`)

// Clean normalizes extracted report text for parsing.
//
// Bureau PDFs carry baggage that trips up line-oriented matching:
// page-break separators, private-use glyphs used as icons (Experian and
// TransUnion both embed them), non-breaking spaces, and wide runs of
// padding spaces from table layouts.
func Clean(text string) string {
	s := pageBreakPattern.ReplaceAllString(text, "\n")
	s = strings.ReplaceAll(s, " ", " ")
	s = stripPrivateUse(s)
	s = spaceRunPattern.ReplaceAllString(s, " ")
	return s
}

// stripPrivateUse replaces Unicode Private Use Area runes with spaces.
func stripPrivateUse(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isPrivateUse(r) {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isPrivateUse(r rune) bool {
	if r >= 0xE000 && r <= 0xF8FF {
		return true
	}
	// Supplementary Private Use Areas A and B
	if (r >= 0xF0000 && r <= 0xFFFFD) || (r >= 0x100000 && r <= 0x10FFFD) {
		return true
	}
	return false
}
