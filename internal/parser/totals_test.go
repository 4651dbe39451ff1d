package parser

import (
	"reflect"
	"testing"

	"github.com/insightdelivered/credit-report-analyzer/internal/models"
)

func TestComputeTotals(t *testing.T) {
	accounts := []models.Account{
		{Issuer: "DISCOVER", Balance: 9000, CreditLimit: 10000, PerCardUtilization: 0.90},
		{Issuer: "CITI", Balance: 50, CreditLimit: 500, PerCardUtilization: 0.10},
	}

	totals := ComputeTotals(accounts)

	if totals.TotalBalances != 9050 {
		t.Errorf("total balances: got %v, want 9050", totals.TotalBalances)
	}
	if totals.TotalLimits != 10500 {
		t.Errorf("total limits: got %v, want 10500", totals.TotalLimits)
	}
	// 9050/10500 = 0.8619... rounds to 0.86
	if totals.OverallUtilization != 0.86 {
		t.Errorf("overall utilization: got %v, want 0.86", totals.OverallUtilization)
	}
}

func TestComputeTotals_Idempotent(t *testing.T) {
	accounts := []models.Account{
		{Issuer: "CHASE", Balance: 1234.56, CreditLimit: 5000, PerCardUtilization: 0.25},
		{Issuer: "CITI", Balance: 0.1, CreditLimit: 0.2, PerCardUtilization: 0.50},
	}

	first := ComputeTotals(accounts)
	second := ComputeTotals(accounts)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("totals not stable across runs: %+v vs %+v", first, second)
	}
}

func TestComputeTotals_FloatAccumulation(t *testing.T) {
	// 0.1 added ten times drifts in plain float64 arithmetic; the decimal
	// sum must land exactly on 1.
	accounts := make([]models.Account, 10)
	for i := range accounts {
		accounts[i] = models.Account{Issuer: "CHASE", Balance: 0.1, CreditLimit: 1}
	}

	totals := ComputeTotals(accounts)
	if totals.TotalBalances != 1 {
		t.Errorf("total balances: got %v, want 1", totals.TotalBalances)
	}
	if totals.OverallUtilization != 0.1 {
		t.Errorf("overall utilization: got %v, want 0.1", totals.OverallUtilization)
	}
}

func TestComputeTotals_NoLimits(t *testing.T) {
	accounts := []models.Account{
		{Issuer: "UNKNOWN", Balance: 400, CreditLimit: 0},
	}

	totals := ComputeTotals(accounts)
	if totals.OverallUtilization != 0 {
		t.Errorf("overall utilization without limits: got %v, want 0", totals.OverallUtilization)
	}
}

func TestComputeTotals_Empty(t *testing.T) {
	totals := ComputeTotals(nil)
	if totals.TotalBalances != 0 || totals.TotalLimits != 0 || totals.OverallUtilization != 0 {
		t.Errorf("empty input: got %+v, want zero totals", totals)
	}
}
