package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/insightdelivered/credit-report-analyzer/internal/analyzer"
	"github.com/insightdelivered/credit-report-analyzer/internal/api"
	"github.com/insightdelivered/credit-report-analyzer/internal/config"
	"github.com/insightdelivered/credit-report-analyzer/internal/extractor"
	"github.com/insightdelivered/credit-report-analyzer/internal/models"
	"github.com/insightdelivered/credit-report-analyzer/internal/writer"
)

const version = "1.0.0"

func main() {
	// CLI flags
	jsonFlag := flag.Bool("json", false, "Print the full analysis as JSON instead of writing CSV")
	outputFlag := flag.String("output", "", "Output CSV file path (defaults to input filename with .csv extension)")
	headerFlag := flag.Bool("header", true, "Include bureau/totals metadata rows in CSV")
	serveFlag := flag.Bool("serve", false, "Run the HTTP API server instead of converting files")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	helpFlag := flag.Bool("help", false, "Show usage help")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Credit Report Analyzer
by Insight Delivered (QEA AutoLens)

Extracts revolving credit accounts from consumer credit report PDFs
(TransUnion, Experian, Equifax) and recommends next steps for
improving utilization.

Usage:
  credit-report-analyzer [flags] <report.pdf> [report2.pdf ...]
  credit-report-analyzer --serve

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Analyze a report and write accounts + actions to CSV
  credit-report-analyzer report.pdf

  # Print the analysis as JSON
  credit-report-analyzer --json report.pdf

  # Run the HTTP API (reads ADDR, STATIC_DIR, LOG_LEVEL from env/.env)
  credit-report-analyzer --serve
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("credit-report-analyzer v%s\n", version)
		os.Exit(0)
	}

	if *serveFlag {
		serve()
		return
	}

	if *helpFlag || flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	for _, inputPath := range flag.Args() {
		if err := processFile(inputPath, *outputFlag, *jsonFlag, *headerFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inputPath, err)
			os.Exit(1)
		}
	}
}

func serve() {
	cfg := config.Load()

	log, err := buildLogger(cfg.LogLevel)
	if err != nil {
		fatalf("Failed to build logger: %v\n", err)
	}
	defer log.Sync()

	app := api.NewApp(log, cfg.StaticDir)
	log.Info("starting server", zap.String("addr", cfg.Addr))
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func buildLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	cfg.Level = lvl
	return cfg.Build()
}

func processFile(inputPath, outputPath string, asJSON, includeHeader bool) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}

	ext := strings.ToLower(filepath.Ext(inputPath))
	if ext != ".pdf" {
		return fmt.Errorf("expected .pdf file, got %q", ext)
	}

	fmt.Printf("Processing: %s\n", inputPath)

	pages, err := extractor.ExtractText(inputPath)
	if err != nil {
		return fmt.Errorf("PDF extraction failed: %w", err)
	}

	fmt.Printf("  Extracted text from %d page(s)\n", len(pages))

	result, err := analyzer.Analyze(strings.Join(pages, "\n"))
	if err != nil {
		return err
	}

	fmt.Printf("  Detected bureau: %s\n", result.Bureau)
	fmt.Printf("  Found %d revolving account(s)\n", len(result.Accounts))

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	outPath := outputPath
	if outPath == "" {
		base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		outPath = base + ".csv"
	}

	w := &writer.CSVWriter{IncludeHeader: includeHeader, IncludeActions: true}
	if err := w.WriteToFile(outPath, result); err != nil {
		return fmt.Errorf("CSV write failed: %w", err)
	}

	fmt.Printf("  Output: %s\n", outPath)
	printSummary(result)

	fmt.Println("  Done.")
	return nil
}

func printSummary(result *models.Analysis) {
	fmt.Printf("  Total balances: $%.2f across $%.2f in limits (%.0f%% utilization)\n",
		result.Totals.TotalBalances, result.Totals.TotalLimits, result.Totals.OverallUtilization*100)
	for _, a := range result.Accounts {
		fmt.Printf("    %-24s balance $%.2f / limit $%.2f (%.0f%%)\n",
			a.Issuer, a.Balance, a.CreditLimit, a.PerCardUtilization*100)
	}
	if len(result.Actions) > 0 {
		fmt.Println("  Recommended actions:")
		for _, action := range result.Actions {
			fmt.Printf("    [%s] %s (%s impact)\n", action.ID, action.Title, action.Impact)
		}
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
