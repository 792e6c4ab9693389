package checkout

// Form field names used as ValidationError.Field.
const (
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldCompany   = "company"
	FieldAddress1  = "address_1"
	FieldAddress2  = "address_2"
	FieldCity      = "city"
	FieldState     = "state"
	FieldPostcode  = "postcode"
	FieldCountry   = "country"
	FieldEmail     = "email"
	FieldPhone     = "phone"
)

// MaxFieldLength is the longest value, in bytes, accepted for any field.
const MaxFieldLength = 200

// DefaultRequiredFields are the fields a checkout form must fill in unless
// overridden with WithRequiredFields.
var DefaultRequiredFields = []string{
	FieldFirstName,
	FieldLastName,
	FieldAddress1,
	FieldCity,
	FieldPostcode,
	FieldCountry,
	FieldEmail,
	FieldPhone,
}

// Address is a billing or shipping address as submitted by the customer.
type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company,omitempty"`
	Address1  string `json:"address_1"`
	Address2  string `json:"address_2,omitempty"`
	City      string `json:"city"`
	State     string `json:"state,omitempty"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type field struct {
	name  string
	value string
}

// fields lists every form field in display order.
func (a Address) fields() []field {
	return []field{
		{FieldFirstName, a.FirstName},
		{FieldLastName, a.LastName},
		{FieldCompany, a.Company},
		{FieldAddress1, a.Address1},
		{FieldAddress2, a.Address2},
		{FieldCity, a.City},
		{FieldState, a.State},
		{FieldPostcode, a.Postcode},
		{FieldCountry, a.Country},
		{FieldEmail, a.Email},
		{FieldPhone, a.Phone},
	}
}
