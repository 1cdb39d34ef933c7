package refdata

import "strings"

// DigitsOnly strips every non-digit character from a phone number. NetSuite
// gets digits only, and address comparison happens on the stripped form.
func DigitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
