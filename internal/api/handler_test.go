package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const sampleReport = `DISCOVER
Account Type: Revolving
Balance $9,000
Credit Limit $10,000

CITI
Account Type: Revolving
Balance $50
Credit Limit $500`

func setupTestApp() *fiber.App {
	return NewApp(zap.NewNop(), "")
}

func multipartForm(t *testing.T, fields map[string]string) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %q: %v", k, err)
		}
	}
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func TestHealthEndpoint(t *testing.T) {
	app := setupTestApp()

	req := httptest.NewRequest("GET", "/api/health", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var result map[string]string
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if result["status"] != "ok" {
		t.Errorf("expected status=ok, got %q", result["status"])
	}
	if result["engine"] != "fiber" {
		t.Errorf("expected engine=fiber, got %q", result["engine"])
	}
}

func TestAnalyzeEndpoint_WithText(t *testing.T) {
	app := setupTestApp()

	body, contentType := multipartForm(t, map[string]string{"text": sampleReport})
	req := httptest.NewRequest("POST", "/api/analyze", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	raw, _ := io.ReadAll(resp.Body)
	var result AnalyzeResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !result.Success {
		t.Errorf("expected success, got error %q", result.Error)
	}
	if result.Count != 2 {
		t.Errorf("expected 2 accounts, got %d", result.Count)
	}
	if result.Totals == nil || result.Totals.OverallUtilization != 0.86 {
		t.Errorf("unexpected totals: %+v", result.Totals)
	}

	var ids []string
	for _, a := range result.Actions {
		ids = append(ids, a.ID)
	}
	joined := strings.Join(ids, ",")
	if !strings.Contains(joined, "paydown-30") || !strings.Contains(joined, "balance-transfer") {
		t.Errorf("expected paydown-30 and balance-transfer actions, got %v", ids)
	}
}

func TestAnalyzeEndpoint_CSVRequested(t *testing.T) {
	app := setupTestApp()

	body, contentType := multipartForm(t, map[string]string{"text": sampleReport, "csv": "true"})
	req := httptest.NewRequest("POST", "/api/analyze", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	raw, _ := io.ReadAll(resp.Body)
	var result AnalyzeResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !strings.Contains(result.CSV, "DISCOVER") {
		t.Errorf("expected CSV in response, got %q", result.CSV)
	}
}

func TestAnalyzeEndpoint_RequiresInput(t *testing.T) {
	app := setupTestApp()

	body, contentType := multipartForm(t, map[string]string{})
	req := httptest.NewRequest("POST", "/api/analyze", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("expected 400 for missing input, got %d", resp.StatusCode)
	}
}

func TestAnalyzeEndpoint_NoAccountsFound(t *testing.T) {
	app := setupTestApp()

	body, contentType := multipartForm(t, map[string]string{"text": "nothing about credit lines in here"})
	req := httptest.NewRequest("POST", "/api/analyze", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Errorf("expected 422 when no accounts found, got %d", resp.StatusCode)
	}

	raw, _ := io.ReadAll(resp.Body)
	var result AnalyzeResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Success {
		t.Error("expected success=false")
	}
	if result.Accounts == nil || result.Actions == nil {
		t.Error("error responses must carry empty arrays, not null")
	}
}

func TestAnalyzeEndpoint_RejectsNonPDFUpload(t *testing.T) {
	app := setupTestApp()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "report.txt")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	fw.Write([]byte("not a pdf"))
	mw.Close()

	req := httptest.NewRequest("POST", "/api/analyze", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("expected 400 for non-PDF upload, got %d", resp.StatusCode)
	}
}
