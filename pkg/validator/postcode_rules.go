package validator

import (
	"regexp"
	"strings"
)

// CountryGB is the ISO 3166-1 alpha-2 code that enables UK postcode checks.
const CountryGB = "GB"

// Letters permitted at each position of a UK postcode.
const (
	gbAlpha1 = "[abcdefghijklmnoprstuwyz]"
	gbAlpha2 = "[abcdefghklmnopqrstuvwxy]"
	gbAlpha3 = "[abcdefghjkstuw]"
	gbAlpha4 = "[abehmnprvwxy]"
	gbAlpha5 = "[abdefghjlnpqrstuwxyz]"

	gbInward = "([0-9]" + gbAlpha5 + "{2})$"
)

var (
	// Anything left after removing these makes a postcode invalid for every country.
	postcodeCharsRegex = regexp.MustCompile(`[\t\n\v\f\r \-A-Za-z0-9]`)

	// gbPostcodePatterns are tried in order against the lowercased, space-free
	// input. Group 1 is the outward code, group 2 the inward code.
	gbPostcodePatterns = []*regexp.Regexp{
		// AN NAA, ANN NAA, AAN NAA, AANN NAA
		regexp.MustCompile(`^(` + gbAlpha1 + gbAlpha2 + `?[0-9]{1,2})` + gbInward),
		// ANA NAA
		regexp.MustCompile(`^(` + gbAlpha1 + `[0-9]` + gbAlpha3 + `)` + gbInward),
		// AANA NAA
		regexp.MustCompile(`^(` + gbAlpha1 + gbAlpha2 + `[0-9]` + gbAlpha4 + `)` + gbInward),
		// Girobank
		regexp.MustCompile(`^(gir)(0aa)$`),
		// British Forces Post Office
		regexp.MustCompile(`^(bfpo)([0-9]{1,4})$`),
		regexp.MustCompile(`^(bfpo)(c/o[0-9]{1,3})$`),
	}
)

// IsPostcode reports whether value is an acceptable postcode for country.
// Only letters, digits, whitespace and hyphens are allowed for any country;
// GB postcodes must additionally match one of the UK postcode formats.
func IsPostcode(value, country string) bool {
	rest := postcodeCharsRegex.ReplaceAllString(value, "")
	if strings.Trim(rest, "\x00") != "" {
		return false
	}
	if country == CountryGB {
		return IsGBPostcode(value)
	}
	return true
}

// IsGBPostcode reports whether value is a UK postcode, including the GIR 0AA
// and BFPO special cases. Case and spaces are ignored.
func IsGBPostcode(value string) bool {
	_, ok := matchGBPostcode(value)
	return ok
}

// CanonicalGBPostcode returns value in its display form, e.g. "SW1A 1AA" or
// "BFPO c/o 123". The second result is false if value is not a UK postcode.
func CanonicalGBPostcode(value string) (string, bool) {
	m, ok := matchGBPostcode(value)
	if !ok {
		return "", false
	}
	canonical := strings.ToUpper(m[1] + " " + m[2])
	return strings.Replace(canonical, "C/O", "c/o ", 1), true
}

func matchGBPostcode(value string) ([]string, bool) {
	postcode := strings.ReplaceAll(asciiLower(value), " ", "")
	for _, re := range gbPostcodePatterns {
		if m := re.FindStringSubmatch(postcode); m != nil {
			return m, true
		}
	}
	return nil, false
}

func asciiLower(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

// ValidPostcode validates that a string is a postcode for the given country.
func ValidPostcode(field, value, country string) Rule {
	return Rule{
		Check: func() bool {
			return IsPostcode(value, country)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid postcode",
			TranslationKey: "validation.postcode",
			TranslationValues: map[string]any{
				"field":   field,
				"country": country,
			},
		},
	}
}
