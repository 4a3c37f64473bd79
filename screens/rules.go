package screens

import "github.com/km-arc/expense-share/framework/http/validation"

// Field names.
const (
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldStreet          = "street"
	FieldCity            = "city"
	FieldState           = "state"
	FieldPostalCode      = "postalCode"
	FieldCountry         = "country"
	FieldContact         = "contact"
)

// MinPasswordLength applies to sign-up only; sign-in accepts any non-blank
// password.
const MinPasswordLength = 6

// CountryPlaceholder is the picker's first option and means "no selection".
const CountryPlaceholder = "Choose a country"

var countries = []string{
	CountryPlaceholder,
	"Australia",
	"United States",
	"United Kingdom",
	"Canada",
	"India",
	"New Zealand",
	"Singapore",
	"Malaysia",
}

// Countries returns the picker options, placeholder first.
func Countries() []string {
	out := make([]string, len(countries))
	copy(out, countries)
	return out
}

func emailField(requiredMsg string) validation.Field {
	return validation.On(FieldEmail,
		validation.Required(requiredMsg),
		validation.Email("Please enter a valid email address"),
	)
}

// LoginRules is the sign-in rule table.
func LoginRules() validation.Rules {
	return validation.Rules{
		emailField("Email is required"),
		validation.On(FieldPassword, validation.Required("Password is required")),
	}
}

// MagicLinkRules checks the email alone, with its own required message.
func MagicLinkRules() validation.Field {
	return emailField("Email is required to send magic link")
}

// SignUpRules is the sign-up rule table, in form order.
func SignUpRules() validation.Rules {
	return validation.Rules{
		validation.On(FieldFirstName, validation.Required("First name is required")),
		validation.On(FieldLastName, validation.Required("Last name is required")),
		emailField("Email is required"),
		validation.On(FieldPassword,
			validation.Required("Password is required"),
			validation.MinLength(MinPasswordLength, "Password must be at least 6 characters"),
		),
		validation.On(FieldConfirmPassword,
			validation.Required("Please confirm your password"),
			validation.SameAs(FieldPassword, "Passwords do not match"),
		),
		validation.On(FieldStreet, validation.Required("Street address is required")),
		validation.On(FieldCity, validation.Required("City is required")),
		validation.On(FieldState, validation.Required("State is required")),
		validation.On(FieldPostalCode, validation.Required("Postal code is required")),
		validation.On(FieldCountry, validation.Selected(CountryPlaceholder, "Please select a country")),
		validation.On(FieldContact, validation.Required("Contact number is required")),
	}
}
