package validation

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// ── Types ────────────────────────────────────────────────────────────────────

// Errors holds the current error message per field. It mirrors Laravel's
// MessageBag, with a single canonical message per field.
// JSON output: {"errors": {"field": "msg"}}
type Errors struct {
	Bag map[string]string `json:"errors"`
}

func newErrors() *Errors {
	return &Errors{Bag: make(map[string]string)}
}

func (e *Errors) set(field, msg string) {
	if e.Bag == nil {
		e.Bag = make(map[string]string)
	}
	e.Bag[field] = msg
}

// Has returns true if there are any errors.
func (e *Errors) Has() bool { return len(e.Bag) > 0 }

// Len returns the number of fields with an error.
func (e *Errors) Len() int { return len(e.Bag) }

// First returns the error for a field, or "" when the field is valid.
func (e *Errors) First(field string) string { return e.Bag[field] }

// Clear removes the error for a field.
func (e *Errors) Clear(field string) { delete(e.Bag, field) }

// Fields returns the names of all failing fields, sorted.
func (e *Errors) Fields() []string {
	out := make([]string, 0, len(e.Bag))
	for f := range e.Bag {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Map returns a copy of the bag.
func (e *Errors) Map() map[string]string {
	out := make(map[string]string, len(e.Bag))
	for k, v := range e.Bag {
		out[k] = v
	}
	return out
}

// ── Rules ────────────────────────────────────────────────────────────────────

// Rule is a pure check over a field value. form is the current form state
// and must not be modified.
type Rule struct {
	Name    string
	Message string
	Check   func(value string, form map[string]string) bool
}

// Field binds an ordered list of rules to a field name. The first failing
// rule wins.
type Field struct {
	Name  string
	Rules []Rule
}

// Rules is the rule table of a form, in field declaration order.
type Rules []Field

// Names returns the field names in declaration order.
func (r Rules) Names() []string {
	out := make([]string, len(r))
	for i, f := range r {
		out[i] = f.Name
	}
	return out
}

// Lookup returns the field declaration for name.
func (r Rules) Lookup(name string) (Field, bool) {
	for _, f := range r {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// On is shorthand for building a Field.
//
//	validation.On("email", validation.Required("Email is required"), validation.Email("..."))
func On(name string, rules ...Rule) Field {
	return Field{Name: name, Rules: rules}
}

// EmailPattern accepts local@domain.tld with no whitespace and exactly one
// '@' per segment boundary.
var EmailPattern = regexp.MustCompile(`(?i)^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Required fails when the value is empty after trimming whitespace.
func Required(msg string) Rule {
	return Rule{Name: "required", Message: msg, Check: func(value string, _ map[string]string) bool {
		return strings.TrimSpace(value) != ""
	}}
}

// Matches fails when the value does not match re.
func Matches(re *regexp.Regexp, msg string) Rule {
	return Rule{Name: "regex", Message: msg, Check: func(value string, _ map[string]string) bool {
		return re.MatchString(value)
	}}
}

// Email fails when the value is not shaped like local@domain.tld.
func Email(msg string) Rule {
	r := Matches(EmailPattern, msg)
	r.Name = "email"
	return r
}

// MinLength fails when the untrimmed value is shorter than n characters.
func MinLength(n int, msg string) Rule {
	return Rule{Name: "min", Message: msg, Check: func(value string, _ map[string]string) bool {
		return utf8.RuneCountInString(value) >= n
	}}
}

// SameAs fails when the value differs from the other field's value.
func SameAs(other, msg string) Rule {
	return Rule{Name: "same", Message: msg, Check: func(value string, form map[string]string) bool {
		return value == form[other]
	}}
}

// Selected fails when nothing was picked, i.e. the value is empty or still
// the placeholder option.
func Selected(placeholder, msg string) Rule {
	return Rule{Name: "selected", Message: msg, Check: func(value string, _ map[string]string) bool {
		return value != "" && value != placeholder
	}}
}

// OneOf fails when the value is not one of the allowed options (Laravel's
// in:a,b,c).
func OneOf(options []string, msg string) Rule {
	allowed := make(map[string]bool, len(options))
	for _, o := range options {
		allowed[o] = true
	}
	return Rule{Name: "in", Message: msg, Check: func(value string, _ map[string]string) bool {
		return allowed[value]
	}}
}

// ── Engine ───────────────────────────────────────────────────────────────────

// Engine owns the state of one form instance: the value of every field and
// the errors of the last validation pass. It is not safe for concurrent use.
type Engine struct {
	rules  Rules
	data   map[string]string
	errors *Errors
}

// Make creates an engine with every declared field set to "".
func Make(rules Rules) *Engine {
	e := &Engine{rules: rules}
	e.Reset()
	return e
}

// Reset empties every field and drops all errors.
func (e *Engine) Reset() {
	e.data = make(map[string]string, len(e.rules))
	for _, f := range e.rules {
		e.data[f.Name] = ""
	}
	e.errors = newErrors()
}

// SetField stores value as-is and clears the field's error, whatever the
// new value is.
func (e *Engine) SetField(name, value string) {
	e.data[name] = value
	e.errors.Clear(name)
}

// Has reports whether name is one of the form's declared fields.
func (e *Engine) Has(name string) bool {
	_, ok := e.rules.Lookup(name)
	return ok
}

// Value returns the current value of a field.
func (e *Engine) Value(name string) string { return e.data[name] }

// Values returns a copy of the form state.
func (e *Engine) Values() map[string]string {
	out := make(map[string]string, len(e.data))
	for k, v := range e.data {
		out[k] = v
	}
	return out
}

// Fields returns the declared field names in order.
func (e *Engine) Fields() []string { return e.rules.Names() }

// Errors returns the current error state.
func (e *Engine) Errors() *Errors { return e.errors }

// ValidateAll runs every field's rules and replaces the error state with the
// result. It returns true when no field failed.
func (e *Engine) ValidateAll() bool {
	errs := newErrors()
	for _, f := range e.rules {
		if msg, ok := e.check(f); !ok {
			errs.set(f.Name, msg)
		}
	}
	e.errors = errs
	return !errs.Has()
}

// Validate runs only the given field rules and replaces the errors of those
// fields, leaving every other field's error as it was.
func (e *Engine) Validate(fields ...Field) bool {
	valid := true
	for _, f := range fields {
		msg, ok := e.check(f)
		if ok {
			e.errors.Clear(f.Name)
			continue
		}
		e.errors.set(f.Name, msg)
		valid = false
	}
	return valid
}

// check returns the message of the first failing rule.
func (e *Engine) check(f Field) (string, bool) {
	value := e.data[f.Name]
	for _, r := range f.Rules {
		if !r.Check(value, e.data) {
			return r.Message, false
		}
	}
	return "", true
}
