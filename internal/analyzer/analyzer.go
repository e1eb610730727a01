// Package analyzer runs the full statement pipeline: normalize, identify the
// bank, extract transactions, derive fiscal-year and recurring-payment
// summaries, and render the output artifacts. The pipeline is a pure
// transformation of one input string — it performs no I/O, holds no state
// across calls, and never fails past its boundary: malformed input yields an
// empty Result with a diagnostic, not an error.
package analyzer

import (
	"github.com/mitbapl/soa-analyzer/internal/models"
	"github.com/mitbapl/soa-analyzer/internal/normalizer"
	"github.com/mitbapl/soa-analyzer/internal/parser"
	"github.com/mitbapl/soa-analyzer/internal/report"
	"github.com/mitbapl/soa-analyzer/internal/writer"
)

// Result is everything one pipeline invocation produced. Diagnostic is
// non-empty exactly when Transactions is empty.
type Result struct {
	Bank         string                        `json:"bank"`
	Transactions []models.Transaction          `json:"transactions"`
	FiscalYears  []models.FinancialYearSummary `json:"fiscalYears,omitempty"`
	Recurring    []models.RecurringGroup       `json:"recurring,omitempty"`
	CSV          string                        `json:"csv,omitempty"`
	Summary      string                        `json:"summary,omitempty"`
	Diagnostic   string                        `json:"diagnostic,omitempty"`
	Stats        parser.Stats                  `json:"stats"`
}

// Empty reports whether extraction found nothing.
func (r Result) Empty() bool {
	return len(r.Transactions) == 0
}

// TotalDebit sums the classified debits across all fiscal years.
func (r Result) TotalDebit() float64 {
	var total float64
	for _, fy := range r.FiscalYears {
		total += fy.TotalDebit
	}
	return total
}

// TotalCredit sums the classified credits across all fiscal years.
func (r Result) TotalCredit() float64 {
	var total float64
	for _, fy := range r.FiscalYears {
		total += fy.TotalCredit
	}
	return total
}

// Analyze runs the pipeline over extracted statement text using the default
// bank registry. bankOverride skips identification when the caller already
// knows the issuing bank; an unrecognised override falls back to the generic
// rule, same as an unidentified statement.
func Analyze(text, bankOverride string) Result {
	return AnalyzeWith(parser.Default(), text, bankOverride)
}

// AnalyzeWith is Analyze against an explicit registry.
func AnalyzeWith(reg *parser.Registry, text, bankOverride string) Result {
	bank := bankOverride
	if bank == "" {
		bank = reg.Identify(text)
	}
	profile := reg.Profile(bank)

	lines := normalizer.Lines(text, profile.NormalizerConfig())
	txns, stats := parser.Extract(lines, profile)

	res := Result{
		Bank:         bank,
		Transactions: txns,
		Stats:        stats,
	}

	if len(txns) == 0 {
		res.Diagnostic = writer.Diagnostic(bank, text)
		return res
	}

	res.FiscalYears = report.FiscalYears(txns)
	res.Recurring = report.Recurring(txns)
	res.CSV = writer.CSVString(txns)
	res.Summary = writer.FiscalYearTable(res.FiscalYears) + "\n" + writer.RecurringReport(res.Recurring)
	return res
}
