// Package sanitizer normalises user input collected by checkout and account
// forms before it is stored or displayed.
//
// Helpers cover postcodes, e-mail addresses and phone numbers:
//
//	sanitizer.FormatPostcode("sw1a1aa", "GB")      // "SW1A 1AA"
//	sanitizer.FormatPostcode("90210", "US")        // "90210"
//	sanitizer.NormalizeEmail(" John..Doe@Shop.COM ") // "john.doe@shop.com"
//	sanitizer.FormatPhone("(650) 253-0000", "US")  // "+16502530000"
//
// None of the helpers returns an error. Input that cannot be normalised is
// returned in a best-effort form, usually trimmed but otherwise unchanged.
// The package holds no mutable state and is safe for concurrent use.
package sanitizer
