package report

import "strings"

// OtherCategory is the display label for descriptions matching no category.
const OtherCategory = "Other"

// categoryRules map each label to its keyword list. Matching is substring
// based against the normalised key, so keywords are lowercase; entries
// wrapped in spaces only match as whole words. A description may land in
// several categories.
var categoryRules = []struct {
	Label    string
	Keywords []string
}{
	{"EMI", []string{" emi ", "loan", "bajaj finserv", "finance ltd"}},
	{"Rent", []string{"rent", "nobroker", "housing com"}},
	{"Subscription", []string{"netflix", "spotify", "hotstar", "prime video", "youtube premium", "sonyliv", "subscription"}},
	{"Credit Card", []string{"credit card", "card payment", "cc payment", "cred club"}},
	{"Utility", []string{"electricity", "bescom", "tneb", "mseb", "airtel", "jio", "vodafone", "broadband", "dth recharge", "gas bill", "water bill"}},
	{"Insurance", []string{"insurance", " lic ", "policy premium", "policybazaar"}},
	{"Investment", []string{" sip ", "mutual fund", "zerodha", "groww", "upstox", " nps ", " ppf ", "fixed deposit"}},
	{"Medical", []string{"hospital", "pharmacy", "medical", "apollo", "clinic", "diagnostic", "medplus"}},
	{"Food", []string{"swiggy", "zomato", "restaurant", "eatery", "dominos", "mcdonald"}},
	{"Self Transfer", []string{"self transfer", "own account", " self "}},
}

// Categories returns every category whose keyword occurs in the normalised
// description key. The result is empty when nothing matches; use
// CategoryLabel for the display form.
func Categories(key string) []string {
	padded := " " + strings.ToLower(key) + " "
	var labels []string
	for _, rule := range categoryRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(padded, kw) {
				labels = append(labels, rule.Label)
				break
			}
		}
	}
	return labels
}

// CategoryLabel joins category labels for display, falling back to Other.
func CategoryLabel(labels []string) string {
	if len(labels) == 0 {
		return OtherCategory
	}
	return strings.Join(labels, ", ")
}
