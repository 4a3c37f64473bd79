package screens

import (
	"github.com/charmbracelet/log"

	"github.com/km-arc/expense-share/framework/http/validation"
	"github.com/km-arc/expense-share/framework/logging"
)

// SignUp is the account creation screen.
type SignUp struct {
	form   *validation.Engine
	nav    Navigator
	notify Notifier
	logger *log.Logger
}

// NewSignUp mounts a sign-up screen with empty fields. Nil collaborators are
// replaced by no-ops.
func NewSignUp(nav Navigator, notify Notifier, logger *log.Logger) *SignUp {
	return &SignUp{
		form:   validation.Make(SignUpRules()),
		nav:    orNavigator(nav),
		notify: orNotifier(notify),
		logger: logging.OrDiscard(logger).WithPrefix("signup"),
	}
}

func (s *SignUp) Kind() Kind                { return KindSignUp }
func (s *SignUp) Form() *validation.Engine { return s.form }

// SetField updates a field and clears its error.
func (s *SignUp) SetField(name, value string) { s.form.SetField(name, value) }

// Countries returns the country picker options.
func (s *SignUp) Countries() []string { return Countries() }

// Submit validates the whole form. On success the form is emptied; on
// failure the field errors stay for display and a generic alert is shown.
func (s *SignUp) Submit() bool {
	if !s.form.ValidateAll() {
		s.logger.Debug("sign up rejected", "errors", s.form.Errors().Fields())
		s.notify.Alert(TitleError, MsgFixFields)
		return false
	}
	s.logger.Info("account created",
		"email", s.form.Value(FieldEmail),
		"country", s.form.Value(FieldCountry),
	)
	s.notify.Alert(TitleSuccess, MsgAccountCreated)
	s.form.Reset()
	return true
}

// BackToLogin switches to the login screen.
func (s *SignUp) BackToLogin() { s.nav.Replace(RouteLogin) }
