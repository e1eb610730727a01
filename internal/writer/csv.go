// Package writer renders analysis results as CSV and plain-text reports.
package writer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/mitbapl/soa-analyzer/internal/models"
)

// csvHeader is the fixed column schema of the transaction CSV.
var csvHeader = []string{"Date", "TxnId", "Particulars", "Debit", "Credit", "Balance"}

// WriteCSV writes the transactions as RFC4180-style CSV: comma-delimited,
// "\n" line endings, header row first, fields quoted only when needed.
func WriteCSV(out io.Writer, txns []models.Transaction) error {
	w := csv.NewWriter(out)

	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, txn := range txns {
		row := []string{txn.Date, txn.ReferenceID, txn.Description, txn.Debit, txn.Credit, txn.Balance}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

// CSVString renders the transactions to an in-memory CSV string.
func CSVString(txns []models.Transaction) string {
	var buf bytes.Buffer
	// Writes to a bytes.Buffer cannot fail.
	_ = WriteCSV(&buf, txns)
	return buf.String()
}
