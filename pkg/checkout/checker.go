package checkout

import (
	"context"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/shopkit/pkg/logger"
	"github.com/dmitrymomot/shopkit/pkg/sanitizer"
	"github.com/dmitrymomot/shopkit/pkg/validator"
)

// Checker validates and normalises checkout addresses. It is safe for
// concurrent use.
type Checker struct {
	logger         *slog.Logger
	defaultCountry string
	required       []string
	cleanLine      func(string) string
}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger sets the logger used to report rejected addresses.
func WithLogger(l *slog.Logger) Option {
	return func(c *Checker) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDefaultCountry sets the country assumed when an address leaves it empty.
func WithDefaultCountry(country string) Option {
	return func(c *Checker) {
		c.defaultCountry = sanitizer.TrimToUpper(country)
	}
}

// WithRequiredFields replaces DefaultRequiredFields. Use the Field* constants.
func WithRequiredFields(fields ...string) Option {
	return func(c *Checker) {
		c.required = slices.Clone(fields)
	}
}

// NewChecker returns a Checker with the given options applied. Without
// options it requires DefaultRequiredFields and has no default country.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		logger:    logger.Discard(),
		required:  DefaultRequiredFields,
		cleanLine: sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.SingleLine),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Validate checks addr and returns validator.ValidationErrors describing
// every failing field, or nil. Email, phone and postcode formats are only
// checked when the field is filled in; emptiness is the job of the required
// field list. Required fields are judged on their cleaned value, the same one
// Normalize keeps.
func (c *Checker) Validate(ctx context.Context, addr Address) error {
	country := c.country(addr.Country)
	fields := addr.fields()

	rules := make([]validator.Rule, 0, len(c.required)+len(fields)+3)
	for _, name := range c.required {
		rules = append(rules, validator.RequiredString(name, c.cleanLine(valueOf(fields, name, country))))
	}
	for _, f := range fields {
		rules = append(rules, validator.MaxLenString(f.name, f.value, MaxFieldLength))
	}
	if addr.Email != "" {
		rules = append(rules, validator.ValidEmail(FieldEmail, addr.Email))
	}
	if addr.Phone != "" {
		rules = append(rules, validator.ValidPhone(FieldPhone, addr.Phone))
	}
	if addr.Postcode != "" {
		rules = append(rules, validator.ValidPostcode(FieldPostcode, addr.Postcode, country))
	}

	err := validator.Apply(rules...)
	if errs := validator.ExtractValidationErrors(err); errs != nil {
		c.logger.DebugContext(ctx, "checkout address rejected",
			logger.Fields(errs.Fields()),
			logger.Country(country),
		)
	}
	return err
}

// Normalize returns a copy of addr with single-line text fields, an
// uppercase country (or the default one), a formatted postcode, a normalised
// email and, where the number is recognised, an E.164 phone.
func (c *Checker) Normalize(addr Address) Address {
	out := Address{
		FirstName: c.cleanLine(addr.FirstName),
		LastName:  c.cleanLine(addr.LastName),
		Company:   c.cleanLine(addr.Company),
		Address1:  c.cleanLine(addr.Address1),
		Address2:  c.cleanLine(addr.Address2),
		City:      c.cleanLine(addr.City),
		State:     c.cleanLine(addr.State),
		Country:   c.country(addr.Country),
		Email:     sanitizer.NormalizeEmail(addr.Email),
	}

	if postcode := c.cleanLine(addr.Postcode); postcode != "" {
		out.Postcode = sanitizer.FormatPostcode(postcode, out.Country)
	}
	if phone := c.cleanLine(addr.Phone); phone != "" {
		out.Phone = sanitizer.FormatPhone(phone, out.Country)
	}

	return out
}

func (c *Checker) country(country string) string {
	if country = sanitizer.TrimToUpper(country); country != "" {
		return country
	}
	return c.defaultCountry
}

// valueOf returns the value of the named field. The country counts as filled
// in when a default country applies.
func valueOf(fields []field, name, country string) string {
	if name == FieldCountry {
		return country
	}
	for _, f := range fields {
		if f.name == name {
			return f.value
		}
	}
	return ""
}
