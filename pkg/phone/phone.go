package phone

import (
	"strings"
	"unicode"
)

// Format renders a Brazilian phone number for display: "(AA) BBBB-CCCC" for
// 10 digits, "(AA) BBBBB-CCCC" for 11. Each grouping step applies only when
// enough digits are present, so short or malformed inputs come out partially
// grouped instead of failing. Digits past the 11th are cut off.
// Re-running Format over an already formatted number reproduces it, since
// only the digits are kept before regrouping.
func Format(raw string) string {
	digits := Digits(raw)

	if len(digits) > 11 {
		digits = digits[:11]
	}

	if len(digits) <= 2 {
		return digits
	}

	subscriber := digits[2:]
	switch {
	case len(subscriber) >= 9:
		subscriber = subscriber[:5] + "-" + subscriber[5:]
	case len(subscriber) >= 5:
		subscriber = subscriber[:4] + "-" + subscriber[4:]
	}

	return "(" + digits[:2] + ") " + subscriber
}

// Digits strips everything that is not a decimal digit.
func Digits(raw string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, raw)
}
