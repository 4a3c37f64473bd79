package controllers

import (
	"net/http"

	gohttp "github.com/km-arc/expense-share/framework/http"
	"github.com/km-arc/expense-share/screens"
)

// LandingController serves the welcome screen.
type LandingController struct {
	Controller
}

// Index handles GET /. The actions are the routes the landing buttons lead to.
func (c *LandingController) Index(w http.ResponseWriter, r *http.Request) {
	res := c.Response(w)

	login, signup := &screens.Recorder{}, &screens.Recorder{}
	screens.NewLanding(login).Login()
	screens.NewLanding(signup).SignUp()

	res.Success(gohttp.Envelope{
		"content": screens.NewLanding(nil).Content(),
		"actions": gohttp.Envelope{
			"login":  login.Drain().Navigate,
			"signup": signup.Drain().Navigate,
		},
	})
}
