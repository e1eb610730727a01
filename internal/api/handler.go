// Package api exposes the analysis pipeline over HTTP. It mirrors the mobile
// app's contract: upload a statement PDF (or pre-extracted text) and get the
// structured ledger back as JSON.
package api

import (
	"fmt"
	"io"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitbapl/soa-analyzer/internal/analyzer"
	"github.com/mitbapl/soa-analyzer/internal/extractor"
	"github.com/mitbapl/soa-analyzer/internal/models"
)

const version = "1.0.0"

// AnalyzeResponse is the JSON body returned by POST /api/analyze.
type AnalyzeResponse struct {
	Success      bool                          `json:"success"`
	Error        string                        `json:"error,omitempty"`
	RequestID    string                        `json:"requestId,omitempty"`
	Bank         string                        `json:"bank,omitempty"`
	Count        int                           `json:"count"`
	Transactions []models.Transaction          `json:"transactions"`
	FiscalYears  []models.FinancialYearSummary `json:"fiscalYears,omitempty"`
	Recurring    []models.RecurringGroup       `json:"recurring,omitempty"`
	CSV          string                        `json:"csv,omitempty"`
	Summary      string                        `json:"summary,omitempty"`
	Diagnostic   string                        `json:"diagnostic,omitempty"`
	TotalDebit   float64                       `json:"totalDebit"`
	TotalCredit  float64                       `json:"totalCredit"`
}

// Server wires the HTTP handlers. Remote is optional; without it, uploaded
// PDFs are extracted locally.
type Server struct {
	Log    zerolog.Logger
	Remote *extractor.Client
}

// App builds the fiber application with all routes registered.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:             32 << 20,
		DisableStartupMessage: true,
	})
	app.Get("/api/health", s.HandleHealth)
	app.Post("/api/analyze", s.HandleAnalyze)
	return app
}

// HandleHealth reports liveness.
func (s *Server) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"engine":  "fiber",
		"version": version,
	})
}

// HandleAnalyze accepts either a multipart PDF under field "file" or raw
// pre-extracted text under field "text", plus an optional "bank" override,
// and runs the pipeline. Extraction failures are reported as errors; an
// empty analysis is a successful response carrying a diagnostic.
func (s *Server) HandleAnalyze(c *fiber.Ctx) error {
	requestID := uuid.NewString()
	log := s.Log.With().Str("request_id", requestID).Logger()

	text := c.FormValue("text")
	if text == "" {
		extracted, status, err := s.extractUpload(c)
		if err != nil {
			log.Warn().Err(err).Msg("extraction failed")
			return c.Status(status).JSON(AnalyzeResponse{
				Success:      false,
				Error:        err.Error(),
				RequestID:    requestID,
				Transactions: []models.Transaction{},
			})
		}
		text = extracted
	}

	res := analyzer.Analyze(text, c.FormValue("bank"))
	log.Info().
		Str("bank", res.Bank).
		Int("transactions", len(res.Transactions)).
		Int("skipped_no_match", res.Stats.SkippedNoMatch).
		Int("skipped_numeric", res.Stats.SkippedNumeric).
		Msg("statement analyzed")

	txns := res.Transactions
	if txns == nil {
		// nil marshals to JSON null, not [].
		txns = []models.Transaction{}
	}

	return c.JSON(AnalyzeResponse{
		Success:      true,
		RequestID:    requestID,
		Bank:         res.Bank,
		Count:        len(txns),
		Transactions: txns,
		FiscalYears:  res.FiscalYears,
		Recurring:    res.Recurring,
		CSV:          res.CSV,
		Summary:      res.Summary,
		Diagnostic:   res.Diagnostic,
		TotalDebit:   res.TotalDebit(),
		TotalCredit:  res.TotalCredit(),
	})
}

// extractUpload pulls the uploaded PDF out of the request and turns it into
// text, remotely when a service is configured, locally otherwise. Returns
// the HTTP status to use on failure.
func (s *Server) extractUpload(c *fiber.Ctx) (string, int, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return "", fiber.StatusBadRequest, fmt.Errorf("no file uploaded; use form field 'file' or 'text'")
	}

	f, err := fh.Open()
	if err != nil {
		return "", fiber.StatusBadRequest, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	pdfBytes, err := io.ReadAll(f)
	if err != nil {
		return "", fiber.StatusBadRequest, fmt.Errorf("read upload: %w", err)
	}

	if s.Remote != nil {
		text, err := s.Remote.ExtractText(c.Context(), fh.Filename, pdfBytes)
		if err != nil {
			return "", fiber.StatusUnprocessableEntity, err
		}
		return text, 0, nil
	}

	tmp, err := os.CreateTemp("", "soa-*.pdf")
	if err != nil {
		return "", fiber.StatusInternalServerError, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(pdfBytes); err != nil {
		tmp.Close()
		return "", fiber.StatusInternalServerError, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	text, err := extractor.LocalText(tmp.Name())
	if err != nil {
		return "", fiber.StatusUnprocessableEntity, err
	}
	return text, 0, nil
}
