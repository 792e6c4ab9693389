package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// NormalizeEmail prevents common email input errors but preserves original for invalid formats.
// Consolidates consecutive dots which can cause delivery issues with some email providers.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	local = dotRegex.ReplaceAllString(local, ".")
	local = strings.Trim(local, ".")

	return local + "@" + domain
}

// FormatPhone renders phone in E.164 form, reading national numbers in the
// numbering plan of country. Numbers that cannot be parsed or are not valid
// for the region come back trimmed but otherwise untouched.
func FormatPhone(phone, country string) string {
	trimmed := strings.TrimSpace(phone)
	if trimmed == "" {
		return trimmed
	}

	number, err := phonenumbers.Parse(trimmed, strings.ToUpper(country))
	if err != nil {
		return trimmed
	}
	if !phonenumbers.IsValidNumber(number) {
		return trimmed
	}

	return phonenumbers.Format(number, phonenumbers.E164)
}
