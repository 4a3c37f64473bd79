package screens

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/km-arc/expense-share/framework/http/validation"
	"github.com/km-arc/expense-share/framework/logging"
)

// Login is the sign-in screen: email and password, with a magic-link
// alternative that only needs the email.
type Login struct {
	form   *validation.Engine
	nav    Navigator
	notify Notifier
	logger *log.Logger
}

// NewLogin mounts a login screen with empty fields. Nil collaborators are
// replaced by no-ops.
func NewLogin(nav Navigator, notify Notifier, logger *log.Logger) *Login {
	return &Login{
		form:   validation.Make(LoginRules()),
		nav:    orNavigator(nav),
		notify: orNotifier(notify),
		logger: logging.OrDiscard(logger).WithPrefix("login"),
	}
}

func (s *Login) Kind() Kind                { return KindLogin }
func (s *Login) Form() *validation.Engine { return s.form }

// SetField updates a field and clears its error.
func (s *Login) SetField(name, value string) { s.form.SetField(name, value) }

// Submit is SignIn.
func (s *Login) Submit() bool { return s.SignIn() }

// SignIn validates email and password together. The password only has to
// be non-blank here.
func (s *Login) SignIn() bool {
	if !s.form.ValidateAll() {
		s.logger.Debug("sign in rejected", "errors", s.form.Errors().Fields())
		return false
	}
	s.logger.Info("sign in", "email", s.form.Value(FieldEmail))
	s.notify.Alert(TitleSuccess, MsgSigningIn)
	return true
}

// SendMagicLink validates the email only. The password's error, if any, is
// left as it was.
func (s *Login) SendMagicLink() bool {
	if !s.form.Validate(MagicLinkRules()) {
		s.logger.Debug("magic link rejected", "error", s.form.Errors().First(FieldEmail))
		return false
	}
	email := s.form.Value(FieldEmail)
	s.logger.Info("sending magic link", "email", email)
	s.notify.Alert(TitleSuccess, fmt.Sprintf("Magic link sent to %s", email))
	return true
}

// ForgotPassword records the request. There is no recovery flow yet.
func (s *Login) ForgotPassword() {
	s.logger.Info("forgot password", "email", s.form.Value(FieldEmail))
}

// GoToSignUp switches to the sign-up screen.
func (s *Login) GoToSignUp() { s.nav.Replace(RouteSignUp) }

// Back returns to the landing screen.
func (s *Login) Back() { s.nav.Replace(RouteLanding) }
