package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Email local part
	dotRegex = regexp.MustCompile(`\.+`)

	// Postcodes drop every whitespace byte
	whitespaceRegex = regexp.MustCompile(`[\t\n\v\f\r ]+`)

	// Any Unicode whitespace run, for single-line text fields
	spaceRunRegex = regexp.MustCompile(`[\s\p{Zs}]+`)
)
