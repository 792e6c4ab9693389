package validator

import (
	"regexp"
	"strings"
	"unicode"

	playground "github.com/go-playground/validator/v10"
)

// minEmailLength is the shortest address accepted: "a@b.cc".
const minEmailLength = 6

var (
	// emailSyntax is safe for concurrent use once built.
	emailSyntax = playground.New()

	// Characters a phone field may contain; anything left after removing
	// them makes the value invalid.
	phoneCharsRegex = regexp.MustCompile(`[\t\n\v\f\r #0-9_\-+()]`)

	// Local parts are limited to unquoted ASCII atext and dots.
	emailLocalRegex = regexp.MustCompile("^[a-zA-Z0-9!#$%&'*+/=?^_`{|}~.-]+$")
)

// IsEmail reports whether value is a syntactically valid email address.
// Syntax checking is delegated to go-playground/validator; on top of it the
// local part must be plain ASCII, the domain must contain a dot and its
// labels must be non-empty and must not start or end with a hyphen.
func IsEmail(value string) bool {
	if len(value) < minEmailLength {
		return false
	}
	if strings.ContainsFunc(value, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	}) {
		return false
	}

	at := strings.IndexByte(value, '@')
	if at < 1 || at != strings.LastIndexByte(value, '@') {
		return false
	}

	if !emailLocalRegex.MatchString(value[:at]) {
		return false
	}

	domain := value[at+1:]
	if !strings.Contains(domain, ".") {
		return false
	}
	for label := range strings.SplitSeq(domain, ".") {
		if label == "" || strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
	}

	return emailSyntax.Var(value, "email") == nil
}

// IsPhone reports whether value contains nothing but digits, whitespace and
// the separators # _ - + ( ).
// Values made only of separators (or empty values) pass; pair with
// RequiredString or a digit check when a number is mandatory.
func IsPhone(value string) bool {
	rest := phoneCharsRegex.ReplaceAllString(value, "")
	return strings.Trim(rest, "\x00") == ""
}

// ValidEmail validates that a string is a valid email address.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsEmail(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidPhone validates that a string looks like a phone number.
// Accepts formats like "(020) 7946-0958", "+44 20 7946 0958", "0800 123#45".
func ValidPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsPhone(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid phone number",
			TranslationKey: "validation.phone",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
