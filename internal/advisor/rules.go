package advisor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/insightdelivered/credit-report-analyzer/internal/models"
)

// Action identifiers. One action per id, at most.
const (
	ActionPaydown30        = "paydown-30"
	ActionCLIModerate      = "cli-moderate"
	ActionBalanceTransfer  = "balance-transfer"
	ActionConsolidateSmall = "consolidate-small"
	ActionPaydownBucket    = "paydown-bucket"
)

// The engine never returns more than this many actions.
const maxActions = 6

// A rule inspects the extracted accounts and totals and either produces
// an action or declines.
type rule func(accounts []models.Account, totals models.Totals) (models.Action, bool)

// Rules run in this exact order and the output keeps it; actions are
// never re-ranked by impact.
var rules = []rule{
	paydown30,
	cliModerate,
	balanceTransfer,
	consolidateSmall,
	paydownBucket,
}

// Recommend evaluates the fixed rule set against the accounts and totals
// and returns the actions produced, in rule order, capped at maxActions.
// It never fails; a rule whose condition is unmet simply contributes
// nothing.
func Recommend(accounts []models.Account, totals models.Totals) []models.Action {
	actions := make([]models.Action, 0, len(rules))
	for _, r := range rules {
		a, ok := r(accounts, totals)
		if !ok {
			continue
		}
		actions = append(actions, a)
		if len(actions) == maxActions {
			break
		}
	}
	return actions
}

// paydown30 fires when overall utilization exceeds 30% and suggests the
// payment that brings the total balance back to the 30% line.
func paydown30(accounts []models.Account, totals models.Totals) (models.Action, bool) {
	if totals.TotalLimits <= 0 || totals.OverallUtilization <= 0.30 {
		return models.Action{}, false
	}

	target := decimal.NewFromFloat(totals.TotalLimits).Mul(decimal.NewFromFloat(0.30))
	payment := ceil10(clampZero(decimal.NewFromFloat(totals.TotalBalances).Sub(target)))

	return models.Action{
		ID:                ActionPaydown30,
		Title:             fmt.Sprintf("Pay down about %s to bring overall utilization under 30%%", dollars(payment)),
		Rationale:         "Overall revolving utilization above 30% is one of the strongest drags on a credit score.",
		Impact:            models.ImpactHigh,
		EstSavingsMonthly: estSavings(payment),
		Steps: []string{
			"Put extra payments toward your highest-utilization cards first",
			"Keep paid-down cards open so their limits stay in the total",
			"Recheck utilization after the next statement cycle",
		},
	}, true
}

// cliModerate fires for cards sitting in the moderate 30-80% band, where
// a limit increase helps without a paydown.
func cliModerate(accounts []models.Account, _ models.Totals) (models.Action, bool) {
	var issuers []string
	for _, a := range accounts {
		if a.CreditLimit > 0 && a.PerCardUtilization >= 0.30 && a.PerCardUtilization <= 0.80 {
			issuers = append(issuers, a.Issuer)
		}
	}
	if len(issuers) == 0 {
		return models.Action{}, false
	}
	if len(issuers) > 4 {
		issuers = issuers[:4]
	}

	return models.Action{
		ID:                ActionCLIModerate,
		Title:             fmt.Sprintf("Request credit limit increases on %s", strings.Join(issuers, ", ")),
		Rationale:         "A higher limit lowers utilization on moderately used cards without extra payments.",
		Impact:            models.ImpactMedium,
		EstSavingsMonthly: 0,
		Steps: []string{
			"Ask each issuer for a soft-pull limit increase",
			"Decline any offer that requires a hard inquiry",
			"Avoid new spending against the added headroom",
		},
	}, true
}

// balanceTransfer fires when any card is above 80% utilization and
// targets the worst one.
func balanceTransfer(accounts []models.Account, _ models.Totals) (models.Action, bool) {
	var over []models.Account
	for _, a := range accounts {
		if a.PerCardUtilization > 0.80 {
			over = append(over, a)
		}
	}
	if len(over) == 0 {
		return models.Action{}, false
	}
	worst := maxUtilization(over)

	transferable := decimal.NewFromFloat(worst.Balance)
	if ceiling := decimal.NewFromInt(2000); transferable.GreaterThan(ceiling) {
		transferable = ceiling
	}

	return models.Action{
		ID:                ActionBalanceTransfer,
		Title:             fmt.Sprintf("Move the %s balance on %s to a 0%% intro APR card", dollars(decimal.NewFromFloat(worst.Balance)), worst.Issuer),
		Rationale:         "Cards above 80% utilization usually carry the highest interest cost and score impact.",
		Impact:            models.ImpactHigh,
		EstSavingsMonthly: estSavings(transferable),
		Steps: []string{
			"Compare 0% intro APR transfer offers and their fees",
			"Transfer as much of the balance as the new limit allows",
			"Pay the transferred balance off before the intro period ends",
		},
	}, true
}

// consolidateSmall fires when two or more cards carry trivial balances.
func consolidateSmall(accounts []models.Account, _ models.Totals) (models.Action, bool) {
	count := 0
	for _, a := range accounts {
		if a.Balance > 0 && a.Balance <= 200 {
			count++
		}
	}
	if count < 2 {
		return models.Action{}, false
	}

	return models.Action{
		ID:                ActionConsolidateSmall,
		Title:             fmt.Sprintf("Clear %d small balances in one sweep", count),
		Rationale:         "Several small balances add fees and missed-payment risk out of proportion to the amounts owed.",
		Impact:            models.ImpactMedium,
		EstSavingsMonthly: float64(count * 5),
		Steps: []string{
			"Pay off each balance under $200 in full",
			"Set up autopay on the cards you keep using",
		},
	}, true
}

// Utilization thresholds for the bucket paydown, highest first.
var bucketThresholds = []float64{0.8, 0.5, 0.3, 0.1}

// paydownBucket targets the single worst card and suggests the payment
// that drops it just under the next utilization threshold below it.
func paydownBucket(accounts []models.Account, _ models.Totals) (models.Action, bool) {
	var limited []models.Account
	for _, a := range accounts {
		if a.CreditLimit > 0 {
			limited = append(limited, a)
		}
	}
	if len(limited) == 0 {
		return models.Action{}, false
	}
	worst := maxUtilization(limited)

	threshold := 0.0
	found := false
	for _, t := range bucketThresholds {
		if worst.PerCardUtilization > t {
			threshold = t
			found = true
			break
		}
	}
	if !found {
		return models.Action{}, false
	}

	target := decimal.NewFromFloat(worst.CreditLimit).Mul(decimal.NewFromFloat(threshold)).Floor()
	payment := ceil10(clampZero(decimal.NewFromFloat(worst.Balance).Sub(target)))

	return models.Action{
		ID:                ActionPaydownBucket,
		Title:             fmt.Sprintf("Pay %s on %s to drop below %.0f%% utilization", dollars(payment), worst.Issuer, threshold*100),
		Rationale:         "Crossing under the next utilization threshold gives the largest score improvement per dollar paid.",
		Impact:            models.ImpactMedium,
		EstSavingsMonthly: estSavings(payment),
		Steps: []string{
			"Make a one-time payment before the statement closing date",
			"Confirm the lower balance is what the issuer reports",
		},
	}, true
}

// maxUtilization returns the account with the highest per-card
// utilization. The sort is stable and descending, so ties resolve to
// whichever account appeared first in the report.
func maxUtilization(accounts []models.Account) models.Account {
	sorted := make([]models.Account, len(accounts))
	copy(sorted, accounts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PerCardUtilization > sorted[j].PerCardUtilization
	})
	return sorted[0]
}
