package sanitizer

import "strings"

const countryGB = "GB"

// FormatPostcode uppercases a postcode and removes all whitespace. For GB a
// single space is put back before the inward code: at offset 4 when the
// compacted code is 7 characters long, at offset 3 otherwise.
//
// The space position is purely positional, so a malformed GB postcode is
// still split at offset 3 (or appended if the input is shorter than that).
func FormatPostcode(postcode, country string) string {
	postcode = strings.Trim(postcode, " \t\n\r\x00\x0B")
	postcode = whitespaceRegex.ReplaceAllString(asciiUpper(postcode), "")
	postcode = strings.Trim(postcode, "\x00")

	if country != countryGB {
		return postcode
	}

	at := 3
	if len(postcode) == 7 {
		at = 4
	}
	at = min(at, len(postcode))
	return postcode[:at] + " " + postcode[at:]
}

func asciiUpper(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}, s)
}
