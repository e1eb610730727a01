// Package normalizer collapses line-wrapped statement text into one logical
// line per transaction. PDF text extraction routinely wraps a narration over
// several physical lines; a new transaction is recognised only by a leading
// date token, everything until the next date token belongs to the current
// entry.
package normalizer

import (
	"regexp"
	"strings"
)

// Config controls how physical lines are grouped into logical lines.
type Config struct {
	// DatePrefix marks a line as the start of a new transaction.
	DatePrefix *regexp.Regexp
	// Noise lines are dropped before grouping.
	Noise []*regexp.Regexp
}

// DefaultDatePrefix accepts dd/mm/yy and dd/mm/yyyy at the start of a line.
var DefaultDatePrefix = regexp.MustCompile(`^\d{2}/\d{2}/(\d{4}|\d{2})\b`)

// DefaultNoise drops the boilerplate that surrounds the transaction table in
// Indian bank SOAs: headers, addresses, account metadata, page chrome.
var DefaultNoise = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^page \d+( of \d+)?$`),
	regexp.MustCompile(`(?i)statement of account`),
	regexp.MustCompile(`(?i)^account (no|number|name|holder)`),
	regexp.MustCompile(`(?i)^(ifsc|micr)\b`),
	regexp.MustCompile(`(?i)^branch\b`),
	regexp.MustCompile(`(?i)^(customer|cust) id`),
	regexp.MustCompile(`(?i)^nomination\b`),
	regexp.MustCompile(`(?i)^registered office`),
	regexp.MustCompile(`(?i)^this is a system generated`),
	regexp.MustCompile(`(?i)^(date\s+(narration|particulars|description|remarks|transaction))`),
	regexp.MustCompile(`(?i)^statement (period|from)`),
	regexp.MustCompile(`(?i)^(opening|closing) balance`),
}

// DefaultConfig is used when a bank profile does not override the prefix.
func DefaultConfig() Config {
	return Config{DatePrefix: DefaultDatePrefix, Noise: DefaultNoise}
}

// Lines splits raw statement text into logical transaction lines. Physical
// lines are trimmed, blank and noise lines dropped, and non-date-prefixed
// lines are space-joined onto the current logical line. Text with no date
// line at all collapses to a single logical line; the zero-transaction case
// is surfaced downstream, never here.
func Lines(text string, cfg Config) []string {
	if cfg.DatePrefix == nil {
		cfg.DatePrefix = DefaultDatePrefix
	}

	var logical []string
	var current string

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || isNoise(line, cfg.Noise) {
			continue
		}

		if cfg.DatePrefix.MatchString(line) {
			if current != "" {
				logical = append(logical, current)
			}
			current = line
			continue
		}

		if current == "" {
			current = line
		} else {
			current += " " + line
		}
	}

	if current != "" {
		logical = append(logical, current)
	}
	return logical
}

// Normalize returns the logical lines re-joined with newlines. It is
// idempotent: normalising already-normalised text returns it unchanged.
func Normalize(text string, cfg Config) string {
	return strings.Join(Lines(text, cfg), "\n")
}

func isNoise(line string, noise []*regexp.Regexp) bool {
	for _, re := range noise {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
