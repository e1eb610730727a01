package models

// Transaction is a single reconstructed statement entry. Dates and amounts
// are kept as the strings recovered from the statement text: the date stays
// verbatim (dd/mm/yy or dd/mm/yyyy), amounts are normalised decimal strings
// without thousands separators. At most one of Debit/Credit is non-empty;
// both empty means the entry could not be classified (first line of the
// statement, or a balance that did not move).
type Transaction struct {
	Date        string `json:"date"`
	ReferenceID string `json:"referenceId"`
	Description string `json:"description"`
	Debit       string `json:"debit,omitempty"`
	Credit      string `json:"credit,omitempty"`
	Balance     string `json:"balance"`
}

// FinancialYearSummary totals debits and credits for one Indian fiscal year
// (April through March). Label is e.g. "2023-2024", or "Unknown" when the
// transaction date could not be parsed.
type FinancialYearSummary struct {
	Label       string  `json:"fiscalYear"`
	TotalDebit  float64 `json:"totalDebit"`
	TotalCredit float64 `json:"totalCredit"`
	DebitCount  int     `json:"debitCount"`
	CreditCount int     `json:"creditCount"`
}

// RecurringGroup is a cluster of debit transactions sharing an identical
// normalised description, seen at least three times.
type RecurringGroup struct {
	Key         string   `json:"key"`
	Description string   `json:"description"`
	Occurrences int      `json:"occurrences"`
	TotalDebit  float64  `json:"totalDebit"`
	Categories  []string `json:"categories,omitempty"`
}
