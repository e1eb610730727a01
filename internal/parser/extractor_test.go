package parser

import (
	"testing"

	"github.com/mitbapl/soa-analyzer/internal/normalizer"
)

// One fixture per registered bank, each with three well-formed lines.
var bankFixtures = []struct {
	bank  string
	lines []string
}{
	{
		bank: "HDFC",
		lines: []string{
			"01/04/23 UPI-SWIGGY BANGALORE REF0001 01/04/23 100.00 1,000.00",
			"02/04/23 NEFT SALARY ACME PVT LTD NEFT0002 02/04/23 500.00 1,500.00",
			"03/04/23 POS AMAZON PAY INDIA REF0003 03/04/23 300.00 1,200.00",
		},
	},
	{
		bank: "ICICI",
		lines: []string{
			"01/04/2023 UPI/0001 SWIGGY ORDER 100.00 1,000.00",
			"02/04/2023 NEFT/0002 SALARY CREDIT 500.00 1,500.00",
			"03/04/2023 BIL/0003 ELECTRICITY BILL 300.00 1,200.00",
		},
	},
	{
		bank: "SBI",
		lines: []string{
			"01/04/23 ATM WDL MUMBAI REF1111 500.00 Dr 10,000.00",
			"02/04/23 SALARY CREDIT APR NEFT2222 25,000.00 Cr 35,000.00",
			"03/04/23 UPI RENT PAYMENT REF3333 15,000.00 Dr 20,000.00",
		},
	},
	{
		bank: "Axis",
		lines: []string{
			"01/04/2023 ATM CASH WITHDRAWAL - 2,000.00 8,000.00",
			"02/04/2023 NEFT INWARD ACME LTD N12345 5,000.00 13,000.00",
			"03/04/2023 POS GROCERY STORE - 1,000.00 12,000.00",
		},
	},
	{
		bank: "Kotak",
		lines: []string{
			"01/04/2023 UPI/SWIGGY/BLR KTK0001 250.00(Dr) 9,750.00",
			"02/04/2023 IMPS/SALARY/ACME KTK0002 30,000.00(Cr) 39,750.00",
			"03/04/2023 UPI/NETFLIX/SUB KTK0003 649.00(Dr) 39,101.00",
		},
	},
}

func TestExtractPerBankFixtures(t *testing.T) {
	reg := Default()
	for _, fx := range bankFixtures {
		t.Run(fx.bank, func(t *testing.T) {
			profile := reg.Profile(fx.bank)
			txns, stats := Extract(fx.lines, profile)
			if len(txns) != len(fx.lines) {
				t.Fatalf("got %d transactions, want %d (stats %+v)", len(txns), len(fx.lines), stats)
			}
			if stats.Matched != len(fx.lines) {
				t.Errorf("stats.Matched = %d, want %d", stats.Matched, len(fx.lines))
			}
			for i, txn := range txns {
				if txn.Debit != "" && txn.Credit != "" {
					t.Errorf("txn %d: both debit %q and credit %q set", i, txn.Debit, txn.Credit)
				}
				if txn.Date == "" || txn.Balance == "" {
					t.Errorf("txn %d missing date or balance: %+v", i, txn)
				}
			}
		})
	}
}

func TestExtractBalanceDeltaClassification(t *testing.T) {
	// Balances 1000 -> 1500 -> 1200: first entry has no prior balance and
	// stays unclassified, the rise is a credit, the drop a debit.
	lines := []string{
		"01/04/23 UPI-SWIGGY BANGALORE REF0001 01/04/23 100.00 1,000.00",
		"02/04/23 NEFT SALARY ACME PVT LTD NEFT0002 02/04/23 500.00 1,500.00",
		"03/04/23 POS AMAZON PAY INDIA REF0003 03/04/23 300.00 1,200.00",
	}
	txns, _ := Extract(lines, Default().Profile("HDFC"))
	if len(txns) != 3 {
		t.Fatalf("got %d transactions, want 3", len(txns))
	}

	if txns[0].Debit != "" || txns[0].Credit != "" {
		t.Errorf("first transaction must stay unclassified, got debit=%q credit=%q", txns[0].Debit, txns[0].Credit)
	}
	if txns[1].Credit != "500.00" || txns[1].Debit != "" {
		t.Errorf("second transaction: want credit 500.00, got debit=%q credit=%q", txns[1].Debit, txns[1].Credit)
	}
	if txns[2].Debit != "300.00" || txns[2].Credit != "" {
		t.Errorf("third transaction: want debit 300.00, got debit=%q credit=%q", txns[2].Debit, txns[2].Credit)
	}
}

func TestExtractEqualBalanceRecordsNoMovement(t *testing.T) {
	lines := []string{
		"01/04/23 FIRST ENTRY REF0001 01/04/23 100.00 1,000.00",
		"02/04/23 ZERO VALUE ENTRY REF0002 02/04/23 0.00 1,000.00",
		"03/04/23 REAL DEBIT REF0003 03/04/23 200.00 800.00",
	}
	txns, _ := Extract(lines, Default().Profile("HDFC"))
	if len(txns) != 3 {
		t.Fatalf("got %d transactions, want 3", len(txns))
	}
	if txns[1].Debit != "" || txns[1].Credit != "" {
		t.Errorf("equal balance must record no movement, got debit=%q credit=%q", txns[1].Debit, txns[1].Credit)
	}
	// The running balance still advances past the non-moving entry.
	if txns[2].Debit != "200.00" {
		t.Errorf("want debit 200.00 after non-moving entry, got %q", txns[2].Debit)
	}
}

func TestExtractExplicitLabelBeatsDelta(t *testing.T) {
	// SBI labels Dr/Cr itself; no prior balance is needed.
	lines := []string{
		"01/04/23 ATM WDL MUMBAI REF1111 500.00 Dr 10,000.00",
	}
	txns, _ := Extract(lines, Default().Profile("SBI"))
	if len(txns) != 1 {
		t.Fatalf("got %d transactions, want 1", len(txns))
	}
	if txns[0].Debit != "500.00" {
		t.Errorf("want debit 500.00 from the Dr label, got %q", txns[0].Debit)
	}
}

func TestExtractSkipsNonMatchingLines(t *testing.T) {
	lines := []string{
		"Statement summary: totals below",
		"01/04/23 UPI-SWIGGY BANGALORE REF0001 01/04/23 100.00 1,000.00",
		"Value in INR unless stated otherwise",
	}
	txns, stats := Extract(lines, Default().Profile("HDFC"))
	if len(txns) != 1 {
		t.Fatalf("got %d transactions, want 1", len(txns))
	}
	if stats.SkippedNoMatch != 2 {
		t.Errorf("stats.SkippedNoMatch = %d, want 2", stats.SkippedNoMatch)
	}
}

func TestExtractEmptyInput(t *testing.T) {
	txns, stats := Extract(nil, Default().Profile("HDFC"))
	if len(txns) != 0 {
		t.Fatalf("got %d transactions, want 0", len(txns))
	}
	if stats.LogicalLines != 0 {
		t.Errorf("stats.LogicalLines = %d, want 0", stats.LogicalLines)
	}
}

func TestExtractGenericRule(t *testing.T) {
	profile := Default().Profile(UnknownBank)

	// Two trailing amounts: movement plus balance, delta applies.
	lines := []string{
		"01/04/2024 CORNER SHOP 100.00 1,000.00",
		"02/04/2024 WAGES PAID 500.00 1,500.00",
	}
	txns, _ := Extract(lines, profile)
	if len(txns) != 2 {
		t.Fatalf("got %d transactions, want 2", len(txns))
	}
	if txns[1].Credit != "500.00" {
		t.Errorf("want credit 500.00 from balance rise, got %q", txns[1].Credit)
	}

	// Single trailing amount: kept as the running balance, movement unknown.
	txns, _ = Extract([]string{"01/04/2024 CORNER SHOP 1,000.00"}, profile)
	if len(txns) != 1 {
		t.Fatalf("got %d transactions, want 1", len(txns))
	}
	if txns[0].Balance != "1000.00" || txns[0].Debit != "" || txns[0].Credit != "" {
		t.Errorf("coarse record mismatch: %+v", txns[0])
	}
}

func TestExtractFromNormalizedWrappedText(t *testing.T) {
	raw := "HDFC Bank Ltd\nStatement of Account\n" +
		"01/04/23 POS AMAZON\nPAY INDIA REF0003 01/04/23 300.00 1,200.00\n" +
		"02/04/23 ATM WDL REF0004 02/04/23 500.00 700.00\n"

	profile := Default().Profile("HDFC")
	lines := normalizer.Lines(raw, profile.NormalizerConfig())
	txns, _ := Extract(lines, profile)
	if len(txns) != 2 {
		t.Fatalf("got %d transactions, want 2 (lines %q)", len(txns), lines)
	}
	if txns[0].Description != "POS AMAZON PAY INDIA" {
		t.Errorf("wrapped narration not rejoined: %q", txns[0].Description)
	}
}
