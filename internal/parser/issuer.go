package parser

import (
	"regexp"
	"strings"
	"unicode"
)

// UnknownIssuer is the fallback display name when no plausible issuer
// line can be attributed to an account section.
const UnknownIssuer = "UNKNOWN"

// How far back from a section marker the issuer search looks.
const issuerWindow = 1200

// Longest heuristic issuer line we will keep.
const maxIssuerLen = 80

// Major card issuers and bank brands, as they typically print in report
// headings. "AMERICAN EXPRESS" must come before "AMEX" so the long form
// wins when both would match a line.
var knownIssuers = []string{
	"CHASE",
	"AMERICAN EXPRESS",
	"AMEX",
	"CAPITAL ONE",
	"BANK OF AMERICA",
	"WELLS FARGO",
	"DISCOVER",
	"CITI",
	"US BANK",
	"BARCLAYS",
	"SYNCHRONY",
	"USAA",
	"NAVY FEDERAL",
	"PNC",
	"TD BANK",
	"FIFTH THIRD",
	"CREDIT ONE",
	"FIRST PREMIER",
}

// Compiled case-insensitive literal matchers for knownIssuers, in the
// same order. Names are quoted so any regex metacharacters match literally.
var issuerPatterns = compileIssuerPatterns()

func compileIssuerPatterns() []*regexp.Regexp {
	pats := make([]*regexp.Regexp, len(knownIssuers))
	for i, name := range knownIssuers {
		pats[i] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(name))
	}
	return pats
}

// Generic card/bank vocabulary used by the heuristic pass when no
// known issuer appears in the window.
var issuerKeywordPattern = regexp.MustCompile(`(?i)CARD|BANK|VISA|MASTERCARD|AMEX|AMERICAN EXPRESS|DISCOVER`)

// ResolveIssuer attributes an issuer name to the account section starting
// at offset by scanning backward through the preceding lines of text,
// nearest line first.
//
// Two passes: first a literal match against the known-issuer list, then a
// looser heuristic accepting all-caps heading lines or lines containing
// card/bank vocabulary. Returns UnknownIssuer when neither pass matches.
func ResolveIssuer(text string, offset int) string {
	if offset > len(text) {
		offset = len(text)
	}
	if offset < 0 {
		offset = 0
	}
	start := offset - issuerWindow
	if start < 0 {
		start = 0
	}

	var lines []string
	for _, line := range strings.Split(text[start:offset], "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	// Known-issuer pass, nearest line first.
	for i := len(lines) - 1; i >= 0; i-- {
		for j, pat := range issuerPatterns {
			if pat.MatchString(lines[i]) {
				return knownIssuers[j]
			}
		}
	}

	// Heuristic pass: an all-caps heading or a line with card/bank vocabulary.
	for i := len(lines) - 1; i >= 0; i-- {
		line := lines[i]
		condensed := strings.Join(strings.Fields(line), " ")
		if isAllUpper(condensed) || issuerKeywordPattern.MatchString(line) {
			if len(line) > maxIssuerLen {
				return line[:maxIssuerLen]
			}
			return line
		}
	}

	return UnknownIssuer
}

// isAllUpper reports whether s contains at least one letter and no
// lower-case letters.
func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}
