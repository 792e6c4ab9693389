// Package validator checks the values customers type into shop forms.
//
// Two layers are provided. Pure predicates answer a single question about a
// string and never fail:
//
//	validator.IsInteger("-12")            // true
//	validator.IsNatural("042")            // true
//	validator.IsDecimal("2.5e3")          // true
//	validator.IsEmail("ada@example.com")  // true
//	validator.IsPhone("(020) 7946-0958")  // true
//	validator.IsPostcode("SW1A 1AA", "GB") // true
//	validator.IsPostcode("12345", "US")   // true, only the characters are checked
//
// Rule constructors wrap the predicates with a field name, a message and a
// translation key so that a whole form can be checked at once:
//
//	err := validator.Apply(
//	    validator.RequiredString("email", form.Email),
//	    validator.ValidEmail("email", form.Email),
//	    validator.ValidPostcode("postcode", form.Postcode, form.Country),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//	    for _, e := range errs {
//	        // e.Field, e.Message, e.TranslationKey, e.TranslationValues
//	    }
//	}
//
// Apply evaluates every rule and aggregates failures into ValidationErrors,
// which implements error and can be recovered with errors.As.
//
// # Postcodes
//
// Every country accepts only letters, digits, whitespace and hyphens. For
// "GB" the value must also be a UK postcode: the standard outward/inward
// forms with their per-position letter restrictions, GIR 0AA, and BFPO
// numbers. CanonicalGBPostcode returns the display form of a UK postcode.
//
// # Emails
//
// Address syntax is checked by github.com/go-playground/validator/v10 with a
// few extra domain checks on top.
//
// The package holds no mutable state; all functions are safe for concurrent
// use.
package validator
