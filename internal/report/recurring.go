package report

import (
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/mitbapl/soa-analyzer/internal/models"
)

// recurrenceThreshold is the minimum number of identical-key debits that
// makes a group "recurring".
const recurrenceThreshold = 3

// NormalizeKey reduces a narration to its grouping key: lowercase, every
// non-alphanumeric rune replaced by a space, whitespace collapsed. Grouping
// is exact string equality on this key — a trailing reference number that
// survives normalisation makes a distinct group.
func NormalizeKey(description string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(description) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Recurring clusters debit transactions by normalised description and
// returns the groups seen at least three times, sorted by total debit
// descending (key ascending on ties, for stable output).
func Recurring(txns []models.Transaction) []models.RecurringGroup {
	groups := make(map[string]*models.RecurringGroup)

	for _, txn := range txns {
		if txn.Debit == "" {
			continue
		}
		amount, err := strconv.ParseFloat(txn.Debit, 64)
		if err != nil {
			continue
		}
		key := NormalizeKey(txn.Description)
		if key == "" {
			continue
		}
		g, ok := groups[key]
		if !ok {
			g = &models.RecurringGroup{Key: key, Description: txn.Description}
			groups[key] = g
		}
		g.Occurrences++
		g.TotalDebit += amount
	}

	var out []models.RecurringGroup
	for _, g := range groups {
		if g.Occurrences < recurrenceThreshold {
			continue
		}
		g.Categories = Categories(g.Key)
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalDebit != out[j].TotalDebit {
			return out[i].TotalDebit > out[j].TotalDebit
		}
		return out[i].Key < out[j].Key
	})
	return out
}
