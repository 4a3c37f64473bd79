// Package validation provides client-side form validation with an explicit
// rule table.
//
// # Overview
//
// A form is described as an ordered list of fields, each with an ordered list
// of rules. Every rule carries its own fixed message; the first rule that
// fails on a field decides that field's message.
//
// # Basic Usage
//
//	form := validation.Make(validation.Rules{
//	    validation.On("email",
//	        validation.Required("Email is required"),
//	        validation.Email("Please enter a valid email address")),
//	    validation.On("password",
//	        validation.Required("Password is required")),
//	})
//
//	form.SetField("email", "alice@example.com") // also clears email's error
//
//	if !form.ValidateAll() {
//	    // form.Errors() returns *Errors with Bag map[string]string
//	    // JSON: {"errors": {"password": "Password is required"}}
//	}
//
// # Available Rules
//
//   - Required(msg): non-empty after trimming whitespace
//   - Email(msg): local@domain.tld, no whitespace, case-insensitive
//   - MinLength(n, msg): at least n characters, untrimmed
//   - SameAs(other, msg): equal to another field's current value
//   - Selected(placeholder, msg): a picker value other than "" or the placeholder
//   - OneOf(options, msg): one of a fixed list of values
//   - Matches(re, msg): must match a regexp
//
// # Error State
//
// ValidateAll replaces the error state wholesale. Validate re-checks a subset
// of fields and only touches their entries. SetField always clears the edited
// field's entry without re-validating it.
package validation
