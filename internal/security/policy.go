package security

import "unicode"

// ValidPassword is the registration/reset complexity predicate: 8-20 chars,
// at least one upper, lower, digit and symbol, no whitespace. One atomic
// check, callers get a single yes/no.
func ValidPassword(pw string) bool {
	runes := []rune(pw)
	if len(runes) < 8 || len(runes) > 20 {
		return false
	}
	var upper, lower, digit, symbol bool
	for _, r := range runes {
		switch {
		case unicode.IsSpace(r):
			return false
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}
