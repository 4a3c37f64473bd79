package controllers

import (
	"net/http"

	"github.com/km-arc/expense-share/screens"
)

// AuthController answers one-shot form posts: the body fills a fresh screen,
// which is submitted at once and then thrown away.
type AuthController struct {
	Controller
}

// loginRequest binds the sign-in form, JSON or form-encoded.
type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func (b *loginRequest) values() map[string]string {
	return map[string]string{
		screens.FieldEmail:    b.Email,
		screens.FieldPassword: b.Password,
	}
}

// signUpRequest binds the registration form, JSON or form-encoded.
type signUpRequest struct {
	FirstName       string `json:"firstName" form:"firstName"`
	LastName        string `json:"lastName" form:"lastName"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword"`
	Street          string `json:"street" form:"street"`
	City            string `json:"city" form:"city"`
	State           string `json:"state" form:"state"`
	PostalCode      string `json:"postalCode" form:"postalCode"`
	Country         string `json:"country" form:"country"`
	Contact         string `json:"contact" form:"contact"`
}

func (b *signUpRequest) values() map[string]string {
	return map[string]string{
		screens.FieldFirstName:       b.FirstName,
		screens.FieldLastName:        b.LastName,
		screens.FieldEmail:           b.Email,
		screens.FieldPassword:        b.Password,
		screens.FieldConfirmPassword: b.ConfirmPassword,
		screens.FieldStreet:          b.Street,
		screens.FieldCity:            b.City,
		screens.FieldState:           b.State,
		screens.FieldPostalCode:      b.PostalCode,
		screens.FieldCountry:         b.Country,
		screens.FieldContact:         b.Contact,
	}
}

// Login handles POST /login.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	c.oneShot(w, r, screens.KindLogin, &body, body.values, screens.Screen.Submit)
}

// MagicLink handles POST /login/magic-link. Only the email is checked.
func (c *AuthController) MagicLink(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	c.oneShot(w, r, screens.KindLogin, &body, body.values, func(s screens.Screen) bool {
		return s.(*screens.Login).SendMagicLink()
	})
}

// SignUp handles POST /signup.
func (c *AuthController) SignUp(w http.ResponseWriter, r *http.Request) {
	var body signUpRequest
	c.oneShot(w, r, screens.KindSignUp, &body, body.values, screens.Screen.Submit)
}

// oneShot binds the body into dst, copies values() into a new screen of the
// given kind and runs action on it.
func (c *Controller) oneShot(w http.ResponseWriter, r *http.Request, kind screens.Kind, dst any, values func() map[string]string, action func(screens.Screen) bool) {
	req, res := c.Request(r), c.Response(w)

	if err := req.Bind(dst); err != nil {
		res.Error(http.StatusBadRequest, err.Error())
		return
	}

	rec := &screens.Recorder{}
	s, err := screens.New(kind, rec, rec, c.Log)
	if err != nil {
		c.fail(res, err)
		return
	}
	for name, v := range values() {
		s.SetField(name, v)
	}
	ok := action(s)
	outcome(res, ok, "", s, rec.Drain())
}
