package deeplink

import "strings"

const (
	minPhoneDigits = 10
	maxPhoneDigits = 15
)

// Digits strips every non-digit from phone.
// Example: "+91 84120 11008" -> "918412011008"
func Digits(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidPhone reports whether phone has between 10 and 15 digits.
func ValidPhone(phone string) bool {
	n := len(Digits(phone))
	return n >= minPhoneDigits && n <= maxPhoneDigits
}
