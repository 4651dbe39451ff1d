package parser

import (
	"github.com/shopspring/decimal"

	"github.com/insightdelivered/credit-report-analyzer/internal/models"
)

// ComputeTotals aggregates balances and limits across accounts and
// derives the overall utilization ratio. Sums are carried in decimal so
// float accumulation error cannot leak into the rounded results.
func ComputeTotals(accounts []models.Account) models.Totals {
	balances := decimal.Zero
	limits := decimal.Zero
	for _, a := range accounts {
		balances = balances.Add(decimal.NewFromFloat(a.Balance))
		limits = limits.Add(decimal.NewFromFloat(a.CreditLimit))
	}
	balances = balances.Round(2)
	limits = limits.Round(2)

	util := decimal.Zero
	if limits.IsPositive() {
		util = balances.Div(limits).Round(2)
	}

	return models.Totals{
		TotalBalances:      balances.InexactFloat64(),
		TotalLimits:        limits.InexactFloat64(),
		OverallUtilization: util.InexactFloat64(),
	}
}
