package screens_test

import (
	"testing"

	"github.com/km-arc/expense-share/screens"
)

func newLogin(t *testing.T) (*screens.Login, *screens.Recorder) {
	t.Helper()
	rec := &screens.Recorder{}
	return screens.NewLogin(rec, rec, nil), rec
}

func TestLogin_SignIn_AllEmpty(t *testing.T) {
	s, rec := newLogin(t)

	if s.SignIn() {
		t.Fatal("empty login should fail")
	}

	errs := s.Form().Errors()
	if errs.Len() != 2 {
		t.Fatalf("expected 2 errors, got %+v", errs.Bag)
	}
	if got := errs.First("email"); got != "Email is required" {
		t.Errorf("email: got %q", got)
	}
	if got := errs.First("password"); got != "Password is required" {
		t.Errorf("password: got %q", got)
	}
	if ev := rec.Drain(); len(ev.Alerts) != 0 {
		t.Errorf("failed sign in should not alert, got %+v", ev.Alerts)
	}
}

func TestLogin_SignIn_NoPasswordLengthRule(t *testing.T) {
	s, rec := newLogin(t)
	s.SetField("email", "a@b.c")
	s.SetField("password", "x")

	if !s.SignIn() {
		t.Fatalf("expected sign in to pass, errors: %+v", s.Form().Errors().Bag)
	}
	ev := rec.Drain()
	if len(ev.Alerts) != 1 || ev.Alerts[0] != (screens.Alert{Title: "Success", Message: "Signing in..."}) {
		t.Errorf("alerts: got %+v", ev.Alerts)
	}
}

func TestLogin_SignIn_BadEmailFormat(t *testing.T) {
	s, _ := newLogin(t)
	s.SetField("email", "a@b")
	s.SetField("password", "secret")

	if s.SignIn() {
		t.Fatal("expected failure")
	}
	if got := s.Form().Errors().First("email"); got != "Please enter a valid email address" {
		t.Errorf("email: got %q", got)
	}
	if got := s.Form().Errors().First("password"); got != "" {
		t.Errorf("password should be valid, got %q", got)
	}
}

func TestLogin_MagicLink_IgnoresPassword(t *testing.T) {
	s, rec := newLogin(t)
	_ = s.SignIn() // both fields now carry errors
	rec.Drain()

	s.SetField("email", "alice@example.com")
	if !s.SendMagicLink() {
		t.Fatalf("magic link should pass, errors: %+v", s.Form().Errors().Bag)
	}

	if got := s.Form().Errors().First("password"); got != "Password is required" {
		t.Errorf("password error should be untouched, got %q", got)
	}
	ev := rec.Drain()
	want := screens.Alert{Title: "Success", Message: "Magic link sent to alice@example.com"}
	if len(ev.Alerts) != 1 || ev.Alerts[0] != want {
		t.Errorf("alerts: got %+v want %+v", ev.Alerts, want)
	}
}

func TestLogin_MagicLink_Messages(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"", "Email is required to send magic link"},
		{"   ", "Email is required to send magic link"},
		{"a@b", "Please enter a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			s, rec := newLogin(t)
			s.SetField("email", tt.email)

			if s.SendMagicLink() {
				t.Fatal("expected failure")
			}
			if got := s.Form().Errors().First("email"); got != tt.want {
				t.Errorf("got %q want %q", got, tt.want)
			}
			if ev := rec.Drain(); len(ev.Alerts) != 0 {
				t.Errorf("no alert expected, got %+v", ev.Alerts)
			}
		})
	}
}

func TestLogin_EditClearsError(t *testing.T) {
	s, _ := newLogin(t)
	_ = s.SignIn()

	s.SetField("password", "")

	if got := s.Form().Errors().First("password"); got != "" {
		t.Errorf("editing should clear the error even with an invalid value, got %q", got)
	}
	if got := s.Form().Errors().First("email"); got == "" {
		t.Error("email error should remain")
	}
}

func TestLogin_Navigation(t *testing.T) {
	s, rec := newLogin(t)

	s.GoToSignUp()
	if got := rec.Drain().Navigate; got != screens.RouteSignUp {
		t.Errorf("GoToSignUp: got %q", got)
	}

	s.Back()
	if got := rec.Drain().Navigate; got != screens.RouteLanding {
		t.Errorf("Back: got %q", got)
	}

	s.ForgotPassword()
	if ev := rec.Drain(); ev.Navigate != "" || len(ev.Alerts) != 0 {
		t.Errorf("ForgotPassword should have no side effects, got %+v", ev)
	}
}

func TestLogin_NilCollaborators(t *testing.T) {
	s := screens.NewLogin(nil, nil, nil)
	s.SetField("email", "a@b.c")
	s.SetField("password", "pw")

	if !s.SignIn() || !s.SendMagicLink() {
		t.Fatal("expected success")
	}
	s.GoToSignUp()
	s.Back()
}
