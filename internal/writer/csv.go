package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/insightdelivered/credit-report-analyzer/internal/models"
)

// CSVWriter writes an analysis result to CSV format.
type CSVWriter struct {
	IncludeHeader  bool
	IncludeActions bool
}

// WriteToFile writes the analysis to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, analysis *models.Analysis) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, analysis)
}

// Write writes the analysis in CSV format to the given writer: a
// metadata preamble, the accounts table, and optionally the recommended
// actions table.
func (w *CSVWriter) Write(out io.Writer, analysis *models.Analysis) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	if w.IncludeHeader {
		if analysis.Bureau != "" {
			writer.Write([]string{"# Bureau", string(analysis.Bureau)})
		}
		writer.Write([]string{"# Total Balances", money(analysis.Totals.TotalBalances)})
		writer.Write([]string{"# Total Limits", money(analysis.Totals.TotalLimits)})
		writer.Write([]string{"# Overall Utilization", ratio(analysis.Totals.OverallUtilization)})
	}

	header := []string{"Issuer", "Balance", "Credit Limit", "Utilization"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, a := range analysis.Accounts {
		row := []string{
			a.Issuer,
			money(a.Balance),
			money(a.CreditLimit),
			ratio(a.PerCardUtilization),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write account row: %w", err)
		}
	}

	if w.IncludeActions && len(analysis.Actions) > 0 {
		writer.Write([]string{})
		if err := writer.Write([]string{"Action", "Title", "Impact", "Est Monthly Savings"}); err != nil {
			return fmt.Errorf("failed to write actions header: %w", err)
		}
		for _, action := range analysis.Actions {
			row := []string{
				action.ID,
				action.Title,
				action.Impact,
				money(action.EstSavingsMonthly),
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("failed to write action row: %w", err)
			}
		}
	}

	return nil
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func ratio(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
