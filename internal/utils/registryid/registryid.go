// Package registryid extracts 14-digit legal-entity registry numbers (CNPJ)
// embedded in free-text transaction descriptions.
package registryid

import (
	"regexp"
	"strings"
)

// Match is one extracted identifier: the normalized 14-digit ID and the raw
// substring it was matched from, so callers can substitute it in place.
type Match struct {
	ID  string
	Raw string
}

// patterns are tried in order; first successful normalization wins.
var patterns = []*regexp.Regexp{
	regexp.MustCompile(`CNPJ[:\s]*(\d{14,15})`),
	regexp.MustCompile(`CNPJ[:\s]*(\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2})`),
	regexp.MustCompile(`\b(\d{14,15})\b`),
	regexp.MustCompile(`\b(\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2})\b`),
}

var nonDigits = regexp.MustCompile(`\D`)

// Extract scans a description for an embedded registry number. A 15-digit
// run with a leading zero is reduced to 14 digits; any other length rejects
// the pattern and the scan falls through to the next one.
func Extract(description string) (Match, bool) {
	for _, pattern := range patterns {
		m := pattern.FindStringSubmatch(description)
		if m == nil {
			continue
		}
		id, ok := Normalize(m[1])
		if !ok {
			continue
		}
		return Match{ID: id, Raw: m[0]}, true
	}
	return Match{}, false
}

// Normalize strips formatting from a candidate identifier and reduces a
// leading-zero 15-digit run to 14 digits. Returns false when the digit count
// cannot be normalized to exactly 14.
func Normalize(candidate string) (string, bool) {
	digits := nonDigits.ReplaceAllString(candidate, "")
	if len(digits) == 15 && strings.HasPrefix(digits, "0") {
		digits = digits[1:]
	}
	if len(digits) != 14 {
		return "", false
	}
	return digits, true
}
