// Package report derives summaries from an extracted transaction list:
// fiscal-year rollups, recurring-payment groups, and category labels.
package report

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"github.com/mitbapl/soa-analyzer/internal/models"
)

// UnknownFiscalYear buckets transactions whose date could not be parsed.
const UnknownFiscalYear = "Unknown"

// Only month and year matter for bucketing; the day is ignored.
var fyDateRe = regexp.MustCompile(`^\d{2}/(\d{2})/(\d{2}|\d{4})$`)

// FiscalYearLabel maps a statement date to its Indian fiscal-year label
// (April to March): month >= 4 belongs to "year-year+1", otherwise
// "year-1-year". Two-digit years are taken as 20xx.
func FiscalYearLabel(date string) string {
	m := fyDateRe.FindStringSubmatch(date)
	if m == nil {
		return UnknownFiscalYear
	}
	month, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return UnknownFiscalYear
	}
	if year < 100 {
		year += 2000
	}
	if month >= 4 {
		return fmt.Sprintf("%d-%d", year, year+1)
	}
	return fmt.Sprintf("%d-%d", year-1, year)
}

// FiscalYears buckets transactions into fiscal years and totals debits and
// credits per bucket. Output is ordered by label ascending, with the
// Unknown bucket last.
func FiscalYears(txns []models.Transaction) []models.FinancialYearSummary {
	buckets := make(map[string]*models.FinancialYearSummary)

	for _, txn := range txns {
		label := FiscalYearLabel(txn.Date)
		s, ok := buckets[label]
		if !ok {
			s = &models.FinancialYearSummary{Label: label}
			buckets[label] = s
		}
		if txn.Debit != "" {
			if v, err := strconv.ParseFloat(txn.Debit, 64); err == nil {
				s.TotalDebit += v
				s.DebitCount++
			}
		}
		if txn.Credit != "" {
			if v, err := strconv.ParseFloat(txn.Credit, 64); err == nil {
				s.TotalCredit += v
				s.CreditCount++
			}
		}
	}

	out := make([]models.FinancialYearSummary, 0, len(buckets))
	for _, s := range buckets {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Label == UnknownFiscalYear {
			return false
		}
		if out[j].Label == UnknownFiscalYear {
			return true
		}
		return out[i].Label < out[j].Label
	})
	return out
}
