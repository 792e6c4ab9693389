package sanitizer

import (
	"strings"
	"unicode"
)

// TrimToUpper removes leading and trailing whitespace and converts to uppercase.
func TrimToUpper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// RemoveControlChars drops control characters other than tab, CR and LF.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// SingleLine collapses line breaks and runs of whitespace into single spaces
// and trims the result. Address lines are stored this way.
func SingleLine(s string) string {
	return strings.TrimSpace(spaceRunRegex.ReplaceAllString(s, " "))
}
