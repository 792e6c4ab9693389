// Package checkout validates and normalises the billing and shipping address
// forms submitted during checkout.
//
// A Checker combines the field rules from pkg/validator (required fields,
// lengths, email, phone and country-aware postcode checks) and the
// formatters from pkg/sanitizer:
//
//	checker := checkout.NewChecker(
//	    checkout.WithLogger(log),
//	    checkout.WithDefaultCountry("GB"),
//	)
//
//	addr = checker.Normalize(addr)
//	if err := checker.Validate(ctx, addr); err != nil {
//	    errs := validator.ExtractValidationErrors(err)
//	    // render errs.Get(checkout.FieldPostcode) next to the postcode input
//	}
//
// Validate reports every failing field at once. Normalize never turns a
// valid address into an invalid one.
package checkout
