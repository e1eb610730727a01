package parser

import (
	"regexp"

	"github.com/mitbapl/soa-analyzer/internal/normalizer"
)

// Indian bank SOA line shapes, one profile per bank. The patterns match one
// logical (unwrapped) line; column order and date width differ per bank, so
// each profile carries its own projection.
//
// HDFC:   Date Narration ChqRef ValueDt Amount Balance        (dd/mm/yy)
// ICICI:  Date Ref Particulars Amount Balance                 (dd/mm/yyyy)
// SBI:    Date Description Ref Amount Dr/Cr Balance           (dd/mm/yy)
// Axis:   Date Particulars ChqNo Amount Balance               (dd/mm/yyyy)
// Kotak:  Date Narration Ref Amount(Dr/Cr) Balance            (dd/mm/yyyy)
//
// SBI and Kotak label the direction themselves; the rest rely on balance
// progression.

var (
	shortDatePrefix = regexp.MustCompile(`^\d{2}/\d{2}/\d{2}\b`)
	longDatePrefix  = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}\b`)
)

var hdfcLine = regexp.MustCompile(
	`^(\d{2}/\d{2}/\d{2})\s+(.+?)\s+(\S+)\s+\d{2}/\d{2}/\d{2}\s+([\d,]+\.\d{2})\s+([\d,]+\.\d{2})$`)

var iciciLine = regexp.MustCompile(
	`^(\d{2}/\d{2}/\d{4})\s+(\S+)\s+(.+?)\s+([\d,]+\.\d{2})\s+([\d,]+\.\d{2})$`)

var sbiLine = regexp.MustCompile(
	`^(\d{2}/\d{2}/\d{2})\s+(.+?)\s+(\S+)\s+([\d,]+\.\d{2})\s*(Dr|Cr|DR|CR)\s+([\d,]+\.\d{2})$`)

var axisLine = regexp.MustCompile(
	`^(\d{2}/\d{2}/\d{4})\s+(.+?)\s+(\S+)\s+([\d,]+\.\d{2})\s+([\d,]+\.\d{2})$`)

var kotakLine = regexp.MustCompile(
	`^(\d{2}/\d{2}/\d{4})\s+(.+?)\s+(\S+)\s+([\d,]+\.\d{2})\s*\((Dr|Cr)\)\s+([\d,]+\.\d{2})$`)

// genericLine is the best-effort fallback for unidentified banks: a date and
// one or two trailing amounts. With two the second is taken as the running
// balance; with one the value is kept as the balance so progression survives,
// at the cost of the movement itself.
var genericLine = regexp.MustCompile(
	`^(\d{2}/\d{2}/(?:\d{4}|\d{2}))\s+(.+?)\s+([\d,]+\.\d{2})(?:\s+([\d,]+\.\d{2}))?$`)

var genericProfile = BankProfile{
	Name:       UnknownBank,
	DatePrefix: normalizer.DefaultDatePrefix,
	Rule: ExtractionRule{
		Line: genericLine,
		Project: func(m []string) Fields {
			f := Fields{Date: m[1], Description: m[2]}
			if m[4] != "" {
				f.Amount = m[3]
				f.Balance = m[4]
			} else {
				f.Balance = m[3]
			}
			return f
		},
	},
}

func buildDefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register(BankProfile{
		Name:       "HDFC",
		Keywords:   []string{"HDFC Bank", "hdfcbank.com", "HDFC0"},
		DatePrefix: shortDatePrefix,
		Rule: ExtractionRule{
			Line: hdfcLine,
			Project: func(m []string) Fields {
				return Fields{Date: m[1], Description: m[2], Reference: m[3], Amount: m[4], Balance: m[5]}
			},
		},
	})

	r.Register(BankProfile{
		Name:       "ICICI",
		Keywords:   []string{"ICICI Bank", "icicibank.com", "ICIC0"},
		DatePrefix: longDatePrefix,
		Rule: ExtractionRule{
			Line: iciciLine,
			Project: func(m []string) Fields {
				return Fields{Date: m[1], Reference: m[2], Description: m[3], Amount: m[4], Balance: m[5]}
			},
		},
	})

	r.Register(BankProfile{
		Name:       "SBI",
		Keywords:   []string{"State Bank of India", "onlinesbi", "SBIN0"},
		DatePrefix: shortDatePrefix,
		Rule: ExtractionRule{
			Line: sbiLine,
			Project: func(m []string) Fields {
				return Fields{Date: m[1], Description: m[2], Reference: m[3], Amount: m[4], DrCr: m[5], Balance: m[6]}
			},
		},
	})

	r.Register(BankProfile{
		Name:       "Axis",
		Keywords:   []string{"Axis Bank", "axisbank.com", "UTIB0"},
		DatePrefix: longDatePrefix,
		Rule: ExtractionRule{
			Line: axisLine,
			Project: func(m []string) Fields {
				return Fields{Date: m[1], Description: m[2], Reference: m[3], Amount: m[4], Balance: m[5]}
			},
		},
	})

	r.Register(BankProfile{
		Name:       "Kotak",
		Keywords:   []string{"Kotak Mahindra Bank", "kotak.com", "KKBK0"},
		DatePrefix: longDatePrefix,
		Rule: ExtractionRule{
			Line: kotakLine,
			Project: func(m []string) Fields {
				return Fields{Date: m[1], Description: m[2], Reference: m[3], Amount: m[4], DrCr: m[5], Balance: m[6]}
			},
		},
	})

	return r
}
