package validator

import "regexp"

// decimalRegex accepts the numeric literal forms a form field may carry:
// optional surrounding whitespace and sign, digits with an optional fraction
// and an optional exponent.
var decimalRegex = regexp.MustCompile(`^[ \t\n\r\v\f]*[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?[ \t\n\r\v\f]*$`)

// IsInteger reports whether value is a whole number, positive or negative.
// A single leading sign is allowed; at least one digit must follow it.
func IsInteger(value string) bool {
	if value != "" && (value[0] == '-' || value[0] == '+') {
		value = value[1:]
	}
	return IsNatural(value)
}

// IsNatural reports whether value is a non-empty run of ASCII digits.
func IsNatural(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}

// IsDecimal reports whether value is a numeric literal such as "3.14", "-2",
// ".5" or "1e10". It is intentionally more lenient than IsInteger.
func IsDecimal(value string) bool {
	return decimalRegex.MatchString(value)
}

// ValidInteger validates that a string holds a signed whole number.
func ValidInteger(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsInteger(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a whole number",
			TranslationKey: "validation.integer",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidNatural validates that a string holds digits only.
func ValidNatural(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsNatural(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain only digits",
			TranslationKey: "validation.natural",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func ValidDecimal(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsDecimal(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a number",
			TranslationKey: "validation.decimal",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
