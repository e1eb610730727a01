package parser

import "github.com/mitbapl/soa-analyzer/internal/models"

// Stats counts what happened to each logical line during extraction. The
// counters let callers tell "no transactions found" apart from "every line
// failed numeric parsing" without the extractor ever returning an error.
type Stats struct {
	LogicalLines   int `json:"logicalLines"`
	Matched        int `json:"matched"`
	SkippedNoMatch int `json:"skippedNoMatch"`
	SkippedNumeric int `json:"skippedNumeric"`
}

// Extract applies the bank's extraction rule to every logical line and
// returns the transactions in statement order. Lines that do not match the
// rule, or whose numeric fields fail to parse, are skipped silently.
//
// Debit/credit direction comes from the bank's own Dr/Cr labelling when the
// profile captures it; otherwise it is inferred from the running balance:
// a balance above the previous one is a credit, below is a debit. The first
// transaction has no previous balance and stays unclassified, as does an
// entry whose balance did not move.
func Extract(lines []string, profile BankProfile) ([]models.Transaction, Stats) {
	var txns []models.Transaction
	var stats Stats

	prevBalance := 0.0
	havePrev := false

	for _, line := range lines {
		stats.LogicalLines++

		m := profile.Rule.Line.FindStringSubmatch(line)
		if m == nil {
			stats.SkippedNoMatch++
			continue
		}
		f := profile.Rule.Project(m)

		balance, balErr := parseAmount(f.Balance)
		if f.Balance == "" || balErr != nil {
			stats.SkippedNumeric++
			continue
		}

		txn := models.Transaction{
			Date:        f.Date,
			ReferenceID: f.Reference,
			Description: sanitizeDescription(f.Description),
			Balance:     formatAmount(balance),
		}

		switch {
		case f.Debit != "" || f.Credit != "":
			// Separate debit/credit columns.
			if !applyLabelled(&txn, f.Debit, f.Credit, &stats) {
				continue
			}
		case f.DrCr != "":
			amount, err := parseAmount(f.Amount)
			if err != nil {
				stats.SkippedNumeric++
				continue
			}
			if f.DrCr == "Dr" || f.DrCr == "DR" {
				txn.Debit = formatAmount(amount)
			} else {
				txn.Credit = formatAmount(amount)
			}
		case f.Amount != "":
			amount, err := parseAmount(f.Amount)
			if err != nil {
				stats.SkippedNumeric++
				continue
			}
			if havePrev {
				if balance > prevBalance {
					txn.Credit = formatAmount(amount)
				} else if balance < prevBalance {
					txn.Debit = formatAmount(amount)
				}
				// Equal balance: no movement recorded.
			}
			// First transaction: no prior balance, left unclassified.
		}

		prevBalance = balance
		havePrev = true

		stats.Matched++
		txns = append(txns, txn)
	}

	return txns, stats
}

func applyLabelled(txn *models.Transaction, debit, credit string, stats *Stats) bool {
	if debit != "" {
		v, err := parseAmount(debit)
		if err != nil {
			stats.SkippedNumeric++
			return false
		}
		txn.Debit = formatAmount(v)
		return true
	}
	v, err := parseAmount(credit)
	if err != nil {
		stats.SkippedNumeric++
		return false
	}
	txn.Credit = formatAmount(v)
	return true
}
