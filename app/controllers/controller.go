// Package controllers exposes the screens over HTTP as JSON endpoints.
package controllers

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"

	gohttp "github.com/km-arc/expense-share/framework/http"
	"github.com/km-arc/expense-share/framework/logging"
	"github.com/km-arc/expense-share/screens"
)

// Controller is an embeddable base for HTTP controllers.
type Controller struct {
	Log *log.Logger
}

func (c *Controller) Request(r *http.Request) *gohttp.Request {
	return gohttp.NewRequest(r)
}

func (c *Controller) Response(w http.ResponseWriter) *gohttp.Response {
	return gohttp.NewResponse(w)
}

func (c *Controller) logger() *log.Logger { return logging.OrDiscard(c.Log) }

var errUnknownField = errors.New("unknown field")

// fail maps screen errors onto HTTP statuses.
func (c *Controller) fail(res *gohttp.Response, err error) {
	switch {
	case errors.Is(err, screens.ErrUnknownScreen):
		res.NotFound("Screen not found.")
	case errors.Is(err, screens.ErrUnsupported):
		res.Error(http.StatusConflict, "This screen does not support that action.")
	case errors.Is(err, screens.ErrStoreFull):
		res.Error(http.StatusServiceUnavailable, "Too many open screens, try again later.")
	default:
		c.logger().Error("request failed", "err", err)
		res.ServerError()
	}
}

// ScreenView is the JSON shape of a form screen.
type ScreenView struct {
	ID        string            `json:"id,omitempty"`
	Kind      screens.Kind      `json:"kind"`
	Fields    []string          `json:"fields"`
	Values    map[string]string `json:"values"`
	Errors    map[string]string `json:"errors"`
	Countries []string          `json:"countries,omitempty"`
}

func viewOf(id string, s screens.Screen) ScreenView {
	v := ScreenView{
		ID:     id,
		Kind:   s.Kind(),
		Fields: s.Form().Fields(),
		Values: s.Form().Values(),
		Errors: s.Form().Errors().Map(),
	}
	if su, ok := s.(*screens.SignUp); ok {
		v.Countries = su.Countries()
	}
	return v
}

// outcome answers a validating action: 200 with the screen and its side
// effects when valid, 422 with the error bag otherwise.
func outcome(res *gohttp.Response, ok bool, id string, s screens.Screen, ev screens.Events) {
	view := viewOf(id, s)
	if !ok {
		res.ValidationError(s.Form().Errors(), gohttp.Envelope{"screen": view, "alerts": ev.Alerts})
		return
	}
	res.Success(gohttp.Envelope{"screen": view, "navigate": ev.Navigate, "alerts": ev.Alerts})
}
