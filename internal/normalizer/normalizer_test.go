package normalizer

import (
	"regexp"
	"strings"
	"testing"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "single transaction line",
			input:    "01/04/23 UPI-SWIGGY REF001 250.00 1,000.00",
			expected: []string{"01/04/23 UPI-SWIGGY REF001 250.00 1,000.00"},
		},
		{
			name:  "wrapped narration joins onto the date line",
			input: "01/04/23 POS AMAZON\nPAY INDIA REF002 300.00 700.00\n02/04/23 ATM WDL 500.00 200.00",
			expected: []string{
				"01/04/23 POS AMAZON PAY INDIA REF002 300.00 700.00",
				"02/04/23 ATM WDL 500.00 200.00",
			},
		},
		{
			name:  "noise and blank lines dropped",
			input: "Statement of Account\n\nPage 1 of 3\n01/04/23 UPI-SWIGGY REF001 250.00 1,000.00\n\nIFSC: HDFC0000001",
			expected: []string{
				"01/04/23 UPI-SWIGGY REF001 250.00 1,000.00",
			},
		},
		{
			name:     "no date line collapses to one logical line",
			input:    "hello\nworld\nnothing here",
			expected: []string{"hello world nothing here"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:  "preamble before first date kept as its own line",
			input: "Some Bank\n01/04/2023 PAYMENT 100.00 900.00",
			expected: []string{
				"Some Bank",
				"01/04/2023 PAYMENT 100.00 900.00",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lines(tt.input, DefaultConfig())
			if len(got) != len(tt.expected) {
				t.Fatalf("got %d lines, want %d: %q", len(got), len(tt.expected), got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("line %d: got %q, want %q", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"01/04/23 POS AMAZON\nPAY INDIA REF002 300.00 700.00\n02/04/23 ATM WDL 500.00 200.00",
		"no dates at all\njust text",
		"",
		"01/04/2023 PAYMENT 100.00 900.00",
	}
	for _, input := range inputs {
		once := Normalize(input, DefaultConfig())
		twice := Normalize(once, DefaultConfig())
		if once != twice {
			t.Errorf("normalize not idempotent for %q:\nfirst:  %q\nsecond: %q", input, once, twice)
		}
	}
}

func TestLinesCustomDatePrefix(t *testing.T) {
	cfg := DefaultConfig()
	// Restrict transaction starts to 4-digit years only.
	cfg.DatePrefix = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}\b`)

	got := Lines("01/04/23 wrapped text\ncontinues here\n01/04/2023 real start", cfg)
	if len(got) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(got), got)
	}
	if got[0] != "01/04/23 wrapped text continues here" {
		t.Errorf("short-year lines should have been joined: %q", got[0])
	}
	if !strings.HasPrefix(got[1], "01/04/2023") {
		t.Errorf("long-year line should start a logical line: %q", got[1])
	}
}
