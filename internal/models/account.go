package models

// Account represents one revolving credit line found in a report.
type Account struct {
	Issuer             string  `json:"issuer"`
	Balance            float64 `json:"balance"`
	CreditLimit        float64 `json:"creditLimit"`
	PerCardUtilization float64 `json:"perCardUtilization"`
}

// Totals aggregates all extracted accounts.
type Totals struct {
	TotalBalances      float64 `json:"totalBalances"`
	TotalLimits        float64 `json:"totalLimits"`
	OverallUtilization float64 `json:"overallUtilization"`
}

// Action is one recommended next step produced by the rule engine.
type Action struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Rationale         string   `json:"rationale"`
	Impact            string   `json:"impact"` // "high" or "medium"
	EstSavingsMonthly float64  `json:"estSavingsMonthly"`
	Steps             []string `json:"steps"`
}

// Impact levels for actions.
const (
	ImpactHigh   = "high"
	ImpactMedium = "medium"
)

// Bureau identifies the credit bureau a report came from.
type Bureau string

const (
	BureauTransUnion Bureau = "transunion"
	BureauExperian   Bureau = "experian"
	BureauEquifax    Bureau = "equifax"
)

// Analysis is the full result of one analysis call:
// the extracted accounts, their aggregate totals, and the
// recommended actions derived from them.
type Analysis struct {
	Bureau   Bureau    `json:"bureau,omitempty"`
	Accounts []Account `json:"accounts"`
	Totals   Totals    `json:"totals"`
	Actions  []Action  `json:"actions"`
}
