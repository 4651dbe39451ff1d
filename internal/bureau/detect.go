package bureau

import (
	"strings"

	"github.com/insightdelivered/credit-report-analyzer/internal/models"
)

// Scores holds the per-bureau keyword scores from one detection run.
type Scores map[models.Bureau]int

// Tie-break priority. TransUnion reports are the most distinctive, so a
// tied score resolves in their favor first.
var priority = []models.Bureau{
	models.BureauTransUnion,
	models.BureauExperian,
	models.BureauEquifax,
}

// Detect identifies the bureau a report came from using keyword heuristics.
// When nothing matches it falls back to Experian, whose layout the
// revolving-account extractor tolerates best.
func Detect(text string) models.Bureau {
	b, _ := DetectWithScores(text)
	return b
}

// DetectWithScores returns the detected bureau alongside the raw scores,
// which callers can surface for debugging.
func DetectWithScores(text string) (models.Bureau, Scores) {
	scores := score(text)

	best := 0
	for _, s := range scores {
		if s > best {
			best = s
		}
	}
	if best == 0 {
		return models.BureauExperian, scores
	}

	for _, b := range priority {
		if scores[b] == best {
			return b, scores
		}
	}
	return models.BureauExperian, scores
}

func score(text string) Scores {
	scores := Scores{
		models.BureauTransUnion: 0,
		models.BureauExperian:   0,
		models.BureauEquifax:    0,
	}
	if text == "" {
		return scores
	}

	t := strings.ToLower(text)

	// TransUnion signals
	if strings.Contains(t, "satisfactory accounts") {
		scores[models.BureauTransUnion] += 2
	}
	if strings.Contains(t, "payment/remarks key") {
		scores[models.BureauTransUnion] += 2
	}
	if strings.Contains(t, "satisfactory accounts / account information") {
		scores[models.BureauTransUnion] += 3
	}
	if strings.Contains(t, "annualcreditreport.transunion.com") {
		scores[models.BureauTransUnion] += 3
	}

	// Experian signals
	if strings.Contains(t, "annual credit report - experian") {
		scores[models.BureauExperian] += 3
	}
	if strings.Contains(t, "balance histories") {
		scores[models.BureauExperian] += 2
	}
	if strings.Contains(t, "account info") {
		scores[models.BureauExperian] += 1
	}

	// Equifax signals
	if strings.Contains(t, "your credit report summary") {
		scores[models.BureauEquifax] += 3
	}
	if strings.Contains(t, "narrative code") {
		scores[models.BureauEquifax] += 2
	}
	if strings.Contains(t, "credit accounts") {
		scores[models.BureauEquifax] += 2
	}
	if strings.Contains(t, "narrative code") && strings.Contains(t, "description") {
		scores[models.BureauEquifax] += 1
	}

	return scores
}
