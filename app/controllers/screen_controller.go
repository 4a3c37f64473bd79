package controllers

import (
	"errors"
	"fmt"
	"net/http"

	gohttp "github.com/km-arc/expense-share/framework/http"
	"github.com/km-arc/expense-share/framework/http/validation"
	"github.com/km-arc/expense-share/screens"
)

// ScreenController drives mounted screens across requests: mount, edit
// fields one at a time, submit, navigate, unmount.
type ScreenController struct {
	Controller
	Store *screens.Store
}

var mountRules = validation.Rules{
	validation.On("kind",
		validation.Required("Screen kind is required"),
		validation.OneOf([]string{string(screens.KindLogin), string(screens.KindSignUp)}, "Screen kind must be login or signup"),
	),
}

type mountRequest struct {
	Kind string `json:"kind" form:"kind"`
}

type fieldRequest struct {
	Value string `json:"value" form:"value"`
}

// Mount handles POST /screens {"kind": "login"|"signup"}.
func (c *ScreenController) Mount(w http.ResponseWriter, r *http.Request) {
	req, res := c.Request(r), c.Response(w)

	var body mountRequest
	if err := req.Bind(&body); err != nil {
		res.Error(http.StatusBadRequest, err.Error())
		return
	}
	form := validation.Make(mountRules)
	form.SetField("kind", body.Kind)
	if !form.ValidateAll() {
		res.ValidationError(form.Errors())
		return
	}

	id, err := c.Store.Mount(screens.Kind(body.Kind))
	if err != nil {
		c.fail(res, err)
		return
	}
	err = c.Store.With(id, func(s screens.Screen, _ *screens.Recorder) error {
		res.Created(viewOf(id, s))
		return nil
	})
	if err != nil {
		c.fail(res, err)
	}
}

// Show handles GET /screens/{id}.
func (c *ScreenController) Show(w http.ResponseWriter, r *http.Request) {
	req, res := c.Request(r), c.Response(w)
	id := req.RouteParam("id")

	err := c.Store.With(id, func(s screens.Screen, _ *screens.Recorder) error {
		res.Success(viewOf(id, s))
		return nil
	})
	if err != nil {
		c.fail(res, err)
	}
}

// SetField handles PUT /screens/{id}/fields/{field} {"value": "..."}.
// The value is stored exactly as sent and the field's error is cleared.
func (c *ScreenController) SetField(w http.ResponseWriter, r *http.Request) {
	req, res := c.Request(r), c.Response(w)
	id, field := req.RouteParam("id"), req.RouteParam("field")

	var body fieldRequest
	if err := req.Bind(&body); err != nil {
		res.Error(http.StatusBadRequest, err.Error())
		return
	}

	err := c.Store.With(id, func(s screens.Screen, _ *screens.Recorder) error {
		if !s.Form().Has(field) {
			return errUnknownField
		}
		s.SetField(field, body.Value)
		res.Success(viewOf(id, s))
		return nil
	})
	switch {
	case errors.Is(err, errUnknownField):
		res.NotFound(fmt.Sprintf("Unknown field %q.", field))
	case err != nil:
		c.fail(res, err)
	}
}

// Submit handles POST /screens/{id}/submit: sign in, or create account.
func (c *ScreenController) Submit(w http.ResponseWriter, r *http.Request) {
	req, res := c.Request(r), c.Response(w)
	id := req.RouteParam("id")

	err := c.Store.With(id, func(s screens.Screen, rec *screens.Recorder) error {
		ok := s.Submit()
		outcome(res, ok, id, s, rec.Drain())
		return nil
	})
	if err != nil {
		c.fail(res, err)
	}
}

// MagicLink handles POST /screens/{id}/magic-link (login only).
func (c *ScreenController) MagicLink(w http.ResponseWriter, r *http.Request) {
	req, res := c.Request(r), c.Response(w)
	id := req.RouteParam("id")

	err := c.Store.With(id, func(s screens.Screen, rec *screens.Recorder) error {
		login, ok := s.(*screens.Login)
		if !ok {
			return screens.ErrUnsupported
		}
		sent := login.SendMagicLink()
		outcome(res, sent, id, s, rec.Drain())
		return nil
	})
	if err != nil {
		c.fail(res, err)
	}
}

// ForgotPassword handles POST /screens/{id}/forgot-password (login only).
func (c *ScreenController) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	req, res := c.Request(r), c.Response(w)
	id := req.RouteParam("id")

	err := c.Store.With(id, func(s screens.Screen, rec *screens.Recorder) error {
		login, ok := s.(*screens.Login)
		if !ok {
			return screens.ErrUnsupported
		}
		login.ForgotPassword()
		rec.Drain()
		res.Accepted(viewOf(id, s))
		return nil
	})
	if err != nil {
		c.fail(res, err)
	}
}

// Navigate handles POST /screens/{id}/navigate/{action}.
//
//	login:  signup → /signup, back → /
//	signup: login, back → /login
func (c *ScreenController) Navigate(w http.ResponseWriter, r *http.Request) {
	req, res := c.Request(r), c.Response(w)
	id, action := req.RouteParam("id"), req.RouteParam("action")

	err := c.Store.With(id, func(s screens.Screen, rec *screens.Recorder) error {
		switch s := s.(type) {
		case *screens.Login:
			switch action {
			case "signup":
				s.GoToSignUp()
			case "back":
				s.Back()
			default:
				return screens.ErrUnsupported
			}
		case *screens.SignUp:
			switch action {
			case "login", "back":
				s.BackToLogin()
			default:
				return screens.ErrUnsupported
			}
		default:
			return screens.ErrUnsupported
		}
		res.Success(gohttp.Envelope{"navigate": rec.Drain().Navigate})
		return nil
	})
	if err != nil {
		c.fail(res, err)
	}
}

// Unmount handles DELETE /screens/{id}.
func (c *ScreenController) Unmount(w http.ResponseWriter, r *http.Request) {
	req, res := c.Request(r), c.Response(w)
	if err := c.Store.Unmount(req.RouteParam("id")); err != nil {
		c.fail(res, err)
		return
	}
	res.NoContent()
}
