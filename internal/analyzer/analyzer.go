package analyzer

import (
	"errors"
	"strings"

	"github.com/insightdelivered/credit-report-analyzer/internal/advisor"
	"github.com/insightdelivered/credit-report-analyzer/internal/bureau"
	"github.com/insightdelivered/credit-report-analyzer/internal/models"
	"github.com/insightdelivered/credit-report-analyzer/internal/parser"
	"github.com/insightdelivered/credit-report-analyzer/internal/textutil"
)

// The two terminal failure modes. Neither is retryable without
// different input; the transport layer maps them to client errors.
var (
	// ErrEmptyInput means the supplied report text was absent or
	// whitespace-only.
	ErrEmptyInput = errors.New("report text is empty")

	// ErrNoAccounts means both extraction passes found no revolving
	// accounts in the text.
	ErrNoAccounts = errors.New("no revolving accounts found in report text")
)

// Analyze runs the full pipeline over extracted report text: cleanup,
// bureau detection, account extraction, totals, and recommendations.
//
// It is a pure function of its input. Concurrent calls share no state.
func Analyze(text string) (*models.Analysis, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	cleaned := textutil.Clean(text)

	accounts := parser.ExtractAccounts(cleaned)
	if len(accounts) == 0 {
		return nil, ErrNoAccounts
	}

	totals := parser.ComputeTotals(accounts)

	return &models.Analysis{
		Bureau:   bureau.Detect(cleaned),
		Accounts: accounts,
		Totals:   totals,
		Actions:  advisor.Recommend(accounts, totals),
	}, nil
}
