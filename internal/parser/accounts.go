package parser

import (
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/insightdelivered/credit-report-analyzer/internal/models"
)

// Section boundary markers. Reports label revolving lines either as an
// account type or under a terms heading; both forms appear with or
// without colons and with irregular spacing.
var sectionMarkers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Account\s+Type\s*:?\s*Revolving`),
	regexp.MustCompile(`(?i)Terms\s*:?\s*Revolving`),
}

const amountCapture = `\$?\s*(-?[\d,]+(?:\.\d+)?)`

// Balance label variants in priority order. The first matching variant
// per section supplies the balance; later variants are not consulted.
var balanceMatchers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Current\s+Balance\s*:?\s*` + amountCapture),
	regexp.MustCompile(`(?i)Recent\s+Balance\s*:?\s*` + amountCapture),
	regexp.MustCompile(`(?i)Balance\s*:?\s*` + amountCapture),
}

// Credit limit label variants in priority order. "Original Amount" and
// "High Credit" stand in for the limit on reports that omit it.
var limitMatchers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Credit\s+Limit\s*:?\s*` + amountCapture),
	regexp.MustCompile(`(?i)Original\s+Amount\s*:?\s*` + amountCapture),
	regexp.MustCompile(`(?i)High\s+Credit\s*:?\s*` + amountCapture),
}

// Window around a bare "Revolving" token in the fallback pass.
const (
	fallbackBefore = 400
	fallbackAfter  = 600
)

// rawAccount is a section's extracted fields before post-processing.
type rawAccount struct {
	issuer  string
	balance float64
	limit   float64
}

// ExtractAccounts scans report text for revolving-account sections and
// returns the accounts found, in the order their sections appear.
//
// The primary pass splits the text at account-type/terms markers; each
// section runs from its marker to the next marker of either kind (or end
// of text). When that pass yields nothing, a looser fallback pass builds
// a pseudo-section around every literal "Revolving" token. Sections whose
// balance and limit both read as zero are dropped.
func ExtractAccounts(text string) []models.Account {
	records := primaryPass(text)
	if len(records) == 0 {
		records = fallbackPass(text)
	}
	return finalize(records)
}

func primaryPass(text string) []rawAccount {
	var starts []int
	for _, marker := range sectionMarkers {
		for _, loc := range marker.FindAllStringIndex(text, -1) {
			starts = append(starts, loc[0])
		}
	}
	sort.Ints(starts)

	var records []rawAccount
	for i, start := range starts {
		end := len(text)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		if rec, ok := extractSection(text[start:end]); ok {
			rec.issuer = ResolveIssuer(text, start)
			records = append(records, rec)
		}
	}
	return records
}

func fallbackPass(text string) []rawAccount {
	var records []rawAccount
	offset := 0
	for {
		i := strings.Index(text[offset:], "Revolving")
		if i < 0 {
			break
		}
		pos := offset + i

		start := pos - fallbackBefore
		if start < 0 {
			start = 0
		}
		end := pos + fallbackAfter
		if end > len(text) {
			end = len(text)
		}

		if rec, ok := extractSection(text[start:end]); ok {
			rec.issuer = ResolveIssuer(text, pos)
			records = append(records, rec)
		}

		offset = pos + len("Revolving")
	}
	return records
}

// extractSection pulls balance and limit out of one section. Returns
// false when both read as zero, which marks the section as noise.
func extractSection(section string) (rawAccount, bool) {
	rec := rawAccount{
		balance: firstAmount(section, balanceMatchers),
		limit:   firstAmount(section, limitMatchers),
	}
	if rec.balance == 0 && rec.limit == 0 {
		return rawAccount{}, false
	}
	return rec, true
}

// firstAmount tries each matcher in order and normalizes the first
// captured group of the first one that matches.
func firstAmount(section string, matchers []*regexp.Regexp) float64 {
	for _, matcher := range matchers {
		if m := matcher.FindStringSubmatch(section); m != nil {
			return NormalizeAmount(m[1])
		}
	}
	return 0
}

// finalize applies defaults, computes per-card utilization, and filters
// out records with neither a balance nor a limit.
func finalize(records []rawAccount) []models.Account {
	accounts := make([]models.Account, 0, len(records))
	for _, rec := range records {
		if rec.balance <= 0 && rec.limit <= 0 {
			continue
		}
		issuer := rec.issuer
		if issuer == "" {
			issuer = UnknownIssuer
		}
		util := 0.0
		if rec.limit > 0 {
			util = decimal.NewFromFloat(rec.balance).
				Div(decimal.NewFromFloat(rec.limit)).
				Round(2).
				InexactFloat64()
		}
		accounts = append(accounts, models.Account{
			Issuer:             issuer,
			Balance:            rec.balance,
			CreditLimit:        rec.limit,
			PerCardUtilization: util,
		})
	}
	return accounts
}
