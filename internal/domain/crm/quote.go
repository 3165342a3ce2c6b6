package crm

import "regexp"

// quote numbers come from the generate_quote_number database function:
// Q<year>-<sequence padded to 5 digits>
var quoteNumberPattern = regexp.MustCompile(`^Q\d{4}-\d{5,}$`)

// IsQuoteNumber reports whether s has the generated quote number format
func IsQuoteNumber(s string) bool {
	return quoteNumberPattern.MatchString(s)
}
