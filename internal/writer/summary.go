package writer

import (
	"fmt"
	"strings"

	"github.com/mitbapl/soa-analyzer/internal/models"
	"github.com/mitbapl/soa-analyzer/internal/report"
)

// diagnosticSampleLen caps the raw-text excerpt in the empty-result block.
const diagnosticSampleLen = 500

// FiscalYearTable renders the fiscal-year summaries as a fixed-width table.
func FiscalYearTable(summaries []models.FinancialYearSummary) string {
	var b strings.Builder
	b.WriteString("Fiscal Year Summary\n")
	fmt.Fprintf(&b, "%-12s %14s %14s %8s %8s\n", "FY", "Total Debit", "Total Credit", "Debits", "Credits")
	for _, s := range summaries {
		fmt.Fprintf(&b, "%-12s %14.2f %14.2f %8d %8d\n",
			s.Label, s.TotalDebit, s.TotalCredit, s.DebitCount, s.CreditCount)
	}
	return b.String()
}

// RecurringReport lists each recurring-payment group as
// "[categories] description - N times - total".
func RecurringReport(groups []models.RecurringGroup) string {
	var b strings.Builder
	b.WriteString("Recurring Payments\n")
	if len(groups) == 0 {
		b.WriteString("(none detected)\n")
		return b.String()
	}
	for _, g := range groups {
		fmt.Fprintf(&b, "[%s] %s - %d times - %.2f\n",
			report.CategoryLabel(g.Categories), g.Description, g.Occurrences, g.TotalDebit)
	}
	return b.String()
}

// Diagnostic is emitted instead of the reports when extraction produced no
// transactions: the detected bank, an explicit message, and the head of the
// input text so a human can see what the extractor saw.
func Diagnostic(bank, rawText string) string {
	sample := rawText
	if len(sample) > diagnosticSampleLen {
		sample = sample[:diagnosticSampleLen]
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Detected bank: %s\n", bank)
	b.WriteString("no transactions found\n")
	b.WriteString("--- input sample ---\n")
	b.WriteString(sample)
	b.WriteString("\n")
	return b.String()
}
