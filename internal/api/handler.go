package api

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/insightdelivered/credit-report-analyzer/internal/analyzer"
	"github.com/insightdelivered/credit-report-analyzer/internal/extractor"
	"github.com/insightdelivered/credit-report-analyzer/internal/models"
	"github.com/insightdelivered/credit-report-analyzer/internal/writer"
)

const version = "1.0.0"

// AnalyzeResponse is the JSON envelope from the /api/analyze endpoint.
type AnalyzeResponse struct {
	Success  bool             `json:"success"`
	Error    string           `json:"error,omitempty"`
	Bureau   string           `json:"bureau,omitempty"`
	Accounts []models.Account `json:"accounts"`
	Totals   *models.Totals   `json:"totals,omitempty"`
	Actions  []models.Action  `json:"actions"`
	Count    int              `json:"count"`
	CSV      string           `json:"csv,omitempty"`
	RawText  string           `json:"rawText,omitempty"`
	Version  string           `json:"version,omitempty"`
}

// Handler holds the HTTP handlers for the API.
type Handler struct {
	Log *zap.Logger
}

// NewApp builds the fiber application with all routes registered.
// staticDir, when set, serves the web UI.
func NewApp(log *zap.Logger, staticDir string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:   "credit-report-analyzer",
		BodyLimit: 32 << 20, // report PDFs run large
	})
	app.Use(recover.New())
	app.Use(cors.New())

	h := &Handler{Log: log}
	h.Register(app)

	if staticDir != "" {
		app.Static("/", staticDir)
	}
	return app
}

// Register sets up the API routes.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/api/health", h.HandleHealth)
	app.Post("/api/analyze", h.HandleAnalyze)
}

func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"engine":  "fiber",
		"version": version,
	})
}

// HandleAnalyze accepts either a PDF upload in form field "file" or
// pre-extracted report text in form field "text", runs the analysis
// pipeline, and returns the accounts, totals, and recommended actions.
func (h *Handler) HandleAnalyze(c *fiber.Ctx) error {
	text := c.FormValue("text")

	if strings.TrimSpace(text) == "" {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "No report uploaded. Send a PDF in form field 'file' or extracted text in 'text'.")
		}
		if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
			return writeError(c, fiber.StatusBadRequest, "Only PDF files are supported.")
		}

		tmp, err := os.CreateTemp("", "report-*.pdf")
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "Failed to create temp file.")
		}
		tmpName := tmp.Name()
		tmp.Close()
		defer os.Remove(tmpName)

		if err := c.SaveFile(fileHeader, tmpName); err != nil {
			return writeError(c, fiber.StatusInternalServerError, "Failed to save uploaded file.")
		}

		pages, err := extractor.ExtractText(tmpName)
		if err != nil {
			return writeError(c, fiber.StatusUnprocessableEntity, fmt.Sprintf("PDF extraction failed: %v", err))
		}
		text = strings.Join(pages, "\n")
	}

	result, err := analyzer.Analyze(text)
	switch {
	case errors.Is(err, analyzer.ErrEmptyInput):
		return writeError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, analyzer.ErrNoAccounts):
		return writeError(c, fiber.StatusUnprocessableEntity, err.Error())
	case err != nil:
		return writeError(c, fiber.StatusInternalServerError, err.Error())
	}

	h.logger().Info("report analyzed",
		zap.String("bureau", string(result.Bureau)),
		zap.Int("accounts", len(result.Accounts)),
		zap.Int("actions", len(result.Actions)),
	)

	resp := AnalyzeResponse{
		Success:  true,
		Bureau:   string(result.Bureau),
		Accounts: result.Accounts,
		Totals:   &result.Totals,
		Actions:  result.Actions,
		Count:    len(result.Accounts),
		Version:  version,
	}
	// nil slices marshal to JSON null, not []
	if resp.Accounts == nil {
		resp.Accounts = []models.Account{}
	}
	if resp.Actions == nil {
		resp.Actions = []models.Action{}
	}

	if c.FormValue("csv") == "true" {
		var buf bytes.Buffer
		w := &writer.CSVWriter{IncludeHeader: true, IncludeActions: true}
		if err := w.Write(&buf, result); err == nil {
			resp.CSV = buf.String()
		}
	}
	if c.FormValue("rawText") == "true" {
		resp.RawText = text
	}

	return c.JSON(resp)
}

func (h *Handler) logger() *zap.Logger {
	if h.Log == nil {
		return zap.NewNop()
	}
	return h.Log
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(AnalyzeResponse{
		Success:  false,
		Error:    msg,
		Accounts: []models.Account{},
		Actions:  []models.Action{},
	})
}
