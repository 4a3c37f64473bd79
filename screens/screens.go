// Package screens holds the form logic behind the landing, login and
// sign-up screens. Rendering and real navigation belong to the caller; a
// screen only talks to them through Navigator and Notifier.
package screens

import (
	"errors"

	"github.com/km-arc/expense-share/framework/http/validation"
)

// Route identifies a screen transition target.
type Route string

const (
	RouteLanding Route = "/"
	RouteLogin   Route = "/login"
	RouteSignUp  Route = "/signup"
	RouteBack    Route = "back"
)

// Navigator performs a screen transition. Results are never inspected.
type Navigator interface {
	Replace(route Route)
}

// Notifier shows a title and message to the user. Fire and forget.
type Notifier interface {
	Alert(title, message string)
}

// Kind names a form screen.
type Kind string

const (
	KindLogin  Kind = "login"
	KindSignUp Kind = "signup"
)

// ParseKind validates a screen kind coming from the outside.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindLogin, KindSignUp:
		return k, nil
	}
	return "", ErrUnknownScreen
}

// Screen is a mounted form screen.
type Screen interface {
	Kind() Kind
	Form() *validation.Engine
	SetField(name, value string)
	// Submit runs the screen's primary action: sign in or create account.
	Submit() bool
}

var (
	ErrUnknownScreen = errors.New("screens: unknown screen")
	ErrUnsupported   = errors.New("screens: action not supported by this screen")
	ErrStoreFull     = errors.New("screens: too many mounted screens")
)

// Alert titles and messages shown by the screens.
const (
	TitleSuccess = "Success"
	TitleError   = "Error"

	MsgSigningIn      = "Signing in..."
	MsgAccountCreated = "Account created successfully!"
	MsgFixFields      = "Please fill in all required fields correctly"
)

type noopNavigator struct{}

func (noopNavigator) Replace(Route) {}

type noopNotifier struct{}

func (noopNotifier) Alert(string, string) {}

func orNavigator(n Navigator) Navigator {
	if n == nil {
		return noopNavigator{}
	}
	return n
}

func orNotifier(n Notifier) Notifier {
	if n == nil {
		return noopNotifier{}
	}
	return n
}
