// Package parser reconstructs transactions from normalized statement text.
// Each supported bank registers a BankProfile describing how its lines look;
// the extractor itself is bank-agnostic.
package parser

import (
	"regexp"

	"github.com/mitbapl/soa-analyzer/internal/normalizer"
)

// UnknownBank is the sentinel returned when no registered profile matches.
const UnknownBank = "Unknown"

// Fields are the raw captures projected out of one matched line. Amount is
// used with Balance for delta classification; Debit/Credit or DrCr are set
// instead when the bank's own format already labels the direction.
type Fields struct {
	Date        string
	Reference   string
	Description string
	Amount      string
	Debit       string
	Credit      string
	DrCr        string // "Dr" or "Cr" when the format carries an explicit label
	Balance     string
}

// ExtractionRule is a line pattern plus the projection from its submatches
// into named fields.
type ExtractionRule struct {
	Line    *regexp.Regexp
	Project func(m []string) Fields
}

// BankProfile describes one bank's statement format: the keywords that
// identify it, the date prefix that starts a transaction line, and the
// extraction rule for a logical line.
type BankProfile struct {
	Name       string
	Keywords   []string
	DatePrefix *regexp.Regexp
	Rule       ExtractionRule
}

// NormalizerConfig returns the line-grouping config for this bank.
func (p BankProfile) NormalizerConfig() normalizer.Config {
	cfg := normalizer.DefaultConfig()
	if p.DatePrefix != nil {
		cfg.DatePrefix = p.DatePrefix
	}
	return cfg
}

// Registry holds bank profiles in registration order. Identification is
// order-sensitive: the first profile with a matching keyword wins.
type Registry struct {
	profiles []BankProfile
	byName   map[string]BankProfile
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]BankProfile)}
}

// Register appends a profile. Later registrations with the same name replace
// the lookup entry but keep the original identification order.
func (r *Registry) Register(p BankProfile) {
	if _, seen := r.byName[p.Name]; !seen {
		r.profiles = append(r.profiles, p)
	}
	r.byName[p.Name] = p
}

// Identify returns the name of the first registered bank whose keyword
// occurs in the text, or UnknownBank. Matching is a plain case-insensitive
// substring search; no scoring.
func (r *Registry) Identify(text string) string {
	for _, p := range r.profiles {
		for _, kw := range p.Keywords {
			if containsIgnoreCase(text, kw) {
				return p.Name
			}
		}
	}
	return UnknownBank
}

// Profile returns the profile for a bank name, falling back to the generic
// UnknownBank rule for names that were never registered.
func (r *Registry) Profile(name string) BankProfile {
	if p, ok := r.byName[name]; ok {
		return p
	}
	return genericProfile
}

// Names lists the registered banks in identification order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.profiles))
	for _, p := range r.profiles {
		names = append(names, p.Name)
	}
	return names
}

var defaultRegistry = buildDefaultRegistry()

// Default returns the process-wide registry. It is built once at init and
// must be treated as read-only afterward.
func Default() *Registry {
	return defaultRegistry
}
