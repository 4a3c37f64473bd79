package app_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/km-arc/expense-share/app"
	"github.com/km-arc/expense-share/framework/container"
	"github.com/km-arc/expense-share/framework/logging"
	"github.com/km-arc/expense-share/routing"
	"github.com/km-arc/expense-share/screens"
)

// ── helpers ──────────────────────────────────────────────────────────────────

type screenView struct {
	ID        string            `json:"id"`
	Kind      string            `json:"kind"`
	Fields    []string          `json:"fields"`
	Values    map[string]string `json:"values"`
	Errors    map[string]string `json:"errors"`
	Countries []string          `json:"countries"`
}

type outcomeBody struct {
	Errors map[string]string `json:"errors"`
	Screen screenView        `json:"screen"`
	Alerts []screens.Alert   `json:"alerts"`
	Data   struct {
		Screen   screenView      `json:"screen"`
		Navigate string          `json:"navigate"`
		Alerts   []screens.Alert `json:"alerts"`
	} `json:"data"`
}

func newServer(t *testing.T) (http.Handler, *screens.Store) {
	t.Helper()
	store := screens.NewStore(0, nil)
	r := routing.New()
	app.Routes(r, store, nil)
	return r, store
}

func send(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("decode: %v (body %q)", err, rr.Body.String())
	}
	return v
}

func wantStatus(t *testing.T, rr *httptest.ResponseRecorder, code int) {
	t.Helper()
	if rr.Code != code {
		t.Fatalf("status: got %d want %d (body %s)", rr.Code, code, rr.Body.String())
	}
}

func mount(t *testing.T, h http.Handler, kind string) screenView {
	t.Helper()
	rr := send(t, h, http.MethodPost, "/api/v1/screens", map[string]string{"kind": kind})
	wantStatus(t, rr, http.StatusCreated)
	return decode[struct {
		Data screenView `json:"data"`
	}](t, rr).Data
}

func setField(t *testing.T, h http.Handler, id, field, value string) *httptest.ResponseRecorder {
	t.Helper()
	return send(t, h, http.MethodPut, "/api/v1/screens/"+id+"/fields/"+field, map[string]string{"value": value})
}

// ── landing ──────────────────────────────────────────────────────────────────

func TestLanding_Index(t *testing.T) {
	h, _ := newServer(t)
	rr := send(t, h, http.MethodGet, "/", nil)
	wantStatus(t, rr, http.StatusOK)

	body := decode[struct {
		Data struct {
			Content screens.Content   `json:"content"`
			Actions map[string]string `json:"actions"`
		} `json:"data"`
	}](t, rr)
	if body.Data.Content.Title != "Welcome!" || len(body.Data.Content.Features) != 3 {
		t.Errorf("content: got %+v", body.Data.Content)
	}
	if body.Data.Actions["login"] != "/login" || body.Data.Actions["signup"] != "/signup" {
		t.Errorf("actions: got %v", body.Data.Actions)
	}
}

// ── mounted screens ──────────────────────────────────────────────────────────

func TestScreens_Mount(t *testing.T) {
	h, store := newServer(t)

	login := mount(t, h, "login")
	if login.ID == "" || login.Kind != "login" {
		t.Errorf("login view: got %+v", login)
	}
	if len(login.Fields) != 2 || login.Values["email"] != "" || len(login.Errors) != 0 {
		t.Errorf("login should start empty, got %+v", login)
	}
	if login.Countries != nil {
		t.Errorf("login has no country picker, got %v", login.Countries)
	}

	signup := mount(t, h, "signup")
	if len(signup.Fields) != 11 || len(signup.Countries) != 9 || signup.Countries[0] != "Choose a country" {
		t.Errorf("signup view: got %+v", signup)
	}
	if store.Len() != 2 {
		t.Errorf("store: got %d screens want 2", store.Len())
	}
}

func TestScreens_Mount_BadKind(t *testing.T) {
	h, _ := newServer(t)

	for _, kind := range []string{"", "checkout"} {
		rr := send(t, h, http.MethodPost, "/api/v1/screens", map[string]string{"kind": kind})
		wantStatus(t, rr, http.StatusUnprocessableEntity)
		if msg := decode[outcomeBody](t, rr).Errors["kind"]; msg == "" {
			t.Errorf("kind %q: expected an error on kind", kind)
		}
	}
}

func TestScreens_LoginFlow(t *testing.T) {
	h, _ := newServer(t)
	id := mount(t, h, "login").ID

	rr := send(t, h, http.MethodPost, "/api/v1/screens/"+id+"/submit", nil)
	wantStatus(t, rr, http.StatusUnprocessableEntity)
	failed := decode[outcomeBody](t, rr)
	if failed.Errors["email"] != "Email is required" || failed.Errors["password"] != "Password is required" {
		t.Errorf("errors: got %v", failed.Errors)
	}
	if len(failed.Alerts) != 0 {
		t.Errorf("a failed sign in raises no alert, got %v", failed.Alerts)
	}

	rr = setField(t, h, id, "email", "a@b.c")
	wantStatus(t, rr, http.StatusOK)
	edited := decode[struct {
		Data screenView `json:"data"`
	}](t, rr).Data
	if _, ok := edited.Errors["email"]; ok {
		t.Error("editing email should clear its error")
	}
	if edited.Errors["password"] != "Password is required" {
		t.Errorf("password error should remain, got %v", edited.Errors)
	}

	setField(t, h, id, "password", "x")
	rr = send(t, h, http.MethodPost, "/api/v1/screens/"+id+"/submit", nil)
	wantStatus(t, rr, http.StatusOK)
	ok := decode[outcomeBody](t, rr)
	if len(ok.Data.Alerts) != 1 || ok.Data.Alerts[0] != (screens.Alert{Title: "Success", Message: "Signing in..."}) {
		t.Errorf("alerts: got %v", ok.Data.Alerts)
	}
	if ok.Data.Screen.Values["email"] != "a@b.c" {
		t.Errorf("sign in keeps the form, got %v", ok.Data.Screen.Values)
	}
}

func TestScreens_MagicLink(t *testing.T) {
	h, _ := newServer(t)
	id := mount(t, h, "login").ID

	rr := send(t, h, http.MethodPost, "/api/v1/screens/"+id+"/magic-link", nil)
	wantStatus(t, rr, http.StatusUnprocessableEntity)
	if msg := decode[outcomeBody](t, rr).Errors["email"]; msg != "Email is required to send magic link" {
		t.Errorf("email: got %q", msg)
	}

	setField(t, h, id, "email", "a@b.c")
	rr = send(t, h, http.MethodPost, "/api/v1/screens/"+id+"/magic-link", nil)
	wantStatus(t, rr, http.StatusOK)
	ok := decode[outcomeBody](t, rr)
	if len(ok.Data.Alerts) != 1 || ok.Data.Alerts[0].Message != "Magic link sent to a@b.c" {
		t.Errorf("alerts: got %v", ok.Data.Alerts)
	}
	if _, has := ok.Data.Screen.Errors["password"]; has {
		t.Error("magic link must not check the password")
	}
}

func TestScreens_LoginOnlyActions(t *testing.T) {
	h, _ := newServer(t)
	id := mount(t, h, "signup").ID

	for _, action := range []string{"magic-link", "forgot-password"} {
		rr := send(t, h, http.MethodPost, "/api/v1/screens/"+id+"/"+action, nil)
		wantStatus(t, rr, http.StatusConflict)
	}

	login := mount(t, h, "login").ID
	rr := send(t, h, http.MethodPost, "/api/v1/screens/"+login+"/forgot-password", nil)
	wantStatus(t, rr, http.StatusAccepted)
}

func TestScreens_SignUpFlow(t *testing.T) {
	h, _ := newServer(t)
	id := mount(t, h, "signup").ID

	rr := send(t, h, http.MethodPost, "/api/v1/screens/"+id+"/submit", nil)
	wantStatus(t, rr, http.StatusUnprocessableEntity)
	failed := decode[outcomeBody](t, rr)
	if len(failed.Errors) != 11 {
		t.Errorf("every field should fail, got %v", failed.Errors)
	}
	if len(failed.Alerts) != 1 || failed.Alerts[0] != (screens.Alert{Title: "Error", Message: "Please fill in all required fields correctly"}) {
		t.Errorf("alerts: got %v", failed.Alerts)
	}

	for field, v := range map[string]string{
		"firstName": "Ada", "lastName": "Lovelace", "email": "ada@example.com",
		"password": "Secret1", "confirmPassword": "Secret1",
		"street": "1 Main St", "city": "Sydney", "state": "NSW",
		"postalCode": "2000", "country": "Australia", "contact": "0400000000",
	} {
		wantStatus(t, setField(t, h, id, field, v), http.StatusOK)
	}

	rr = send(t, h, http.MethodPost, "/api/v1/screens/"+id+"/submit", nil)
	wantStatus(t, rr, http.StatusOK)
	ok := decode[outcomeBody](t, rr)
	if len(ok.Data.Alerts) != 1 || ok.Data.Alerts[0].Message != "Account created successfully!" {
		t.Errorf("alerts: got %v", ok.Data.Alerts)
	}
	for f, v := range ok.Data.Screen.Values {
		if v != "" {
			t.Errorf("%s should be reset, got %q", f, v)
		}
	}
}

func TestScreens_SetField_UnknownField(t *testing.T) {
	h, _ := newServer(t)
	id := mount(t, h, "login").ID

	wantStatus(t, setField(t, h, id, "nickname", "x"), http.StatusNotFound)
}

func TestScreens_SetField_FormEncoded(t *testing.T) {
	h, _ := newServer(t)
	id := mount(t, h, "login").ID

	req := httptest.NewRequest(http.MethodPut, "/api/v1/screens/"+id+"/fields/email",
		strings.NewReader(url.Values{"value": {"  spaced  "}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	wantStatus(t, rr, http.StatusOK)
	v := decode[struct {
		Data screenView `json:"data"`
	}](t, rr).Data
	if v.Values["email"] != "  spaced  " {
		t.Errorf("value must be stored untrimmed, got %q", v.Values["email"])
	}
}

func TestScreens_Navigate(t *testing.T) {
	h, _ := newServer(t)
	login := mount(t, h, "login").ID
	signup := mount(t, h, "signup").ID

	tests := []struct {
		id, action string
		status     int
		want       string
	}{
		{login, "signup", http.StatusOK, "/signup"},
		{login, "back", http.StatusOK, "/"},
		{login, "login", http.StatusConflict, ""},
		{signup, "login", http.StatusOK, "/login"},
		{signup, "back", http.StatusOK, "/login"},
		{signup, "signup", http.StatusConflict, ""},
	}
	for _, tc := range tests {
		rr := send(t, h, http.MethodPost, "/api/v1/screens/"+tc.id+"/navigate/"+tc.action, nil)
		if rr.Code != tc.status {
			t.Errorf("%s: status got %d want %d", tc.action, rr.Code, tc.status)
			continue
		}
		if tc.status != http.StatusOK {
			continue
		}
		got := decode[struct {
			Data struct {
				Navigate string `json:"navigate"`
			} `json:"data"`
		}](t, rr).Data.Navigate
		if got != tc.want {
			t.Errorf("%s: navigate got %q want %q", tc.action, got, tc.want)
		}
	}
}

func TestScreens_ShowAndUnmount(t *testing.T) {
	h, store := newServer(t)
	id := mount(t, h, "login").ID

	wantStatus(t, send(t, h, http.MethodGet, "/api/v1/screens/"+id, nil), http.StatusOK)
	wantStatus(t, send(t, h, http.MethodDelete, "/api/v1/screens/"+id, nil), http.StatusNoContent)
	if store.Len() != 0 {
		t.Errorf("store should be empty, got %d", store.Len())
	}
	wantStatus(t, send(t, h, http.MethodGet, "/api/v1/screens/"+id, nil), http.StatusNotFound)
	wantStatus(t, send(t, h, http.MethodDelete, "/api/v1/screens/"+id, nil), http.StatusNotFound)
}

func TestScreens_StoreFull(t *testing.T) {
	store := screens.NewStore(1, nil)
	r := routing.New()
	app.Routes(r, store, nil)

	mount(t, r, "login")
	rr := send(t, r, http.MethodPost, "/api/v1/screens", map[string]string{"kind": "login"})
	wantStatus(t, rr, http.StatusServiceUnavailable)
}

// ── one-shot forms ───────────────────────────────────────────────────────────

func TestAuth_Login(t *testing.T) {
	h, store := newServer(t)

	rr := send(t, h, http.MethodPost, "/api/v1/login", map[string]string{"email": "a@b", "password": "x"})
	wantStatus(t, rr, http.StatusUnprocessableEntity)
	if msg := decode[outcomeBody](t, rr).Errors["email"]; msg != "Please enter a valid email address" {
		t.Errorf("email: got %q", msg)
	}

	rr = send(t, h, http.MethodPost, "/api/v1/login", map[string]string{"email": "a@b.c", "password": "x"})
	wantStatus(t, rr, http.StatusOK)
	if store.Len() != 0 {
		t.Error("one-shot posts must not mount screens")
	}
}

func TestAuth_Login_FormEncoded(t *testing.T) {
	h, _ := newServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/login",
		strings.NewReader(url.Values{"email": {"a@b.c"}, "password": {"x"}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	wantStatus(t, rr, http.StatusOK)
}

func TestAuth_MagicLink(t *testing.T) {
	h, _ := newServer(t)

	rr := send(t, h, http.MethodPost, "/api/v1/login/magic-link", map[string]string{"email": "a@b.c"})
	wantStatus(t, rr, http.StatusOK)
	if a := decode[outcomeBody](t, rr).Data.Alerts; len(a) != 1 || a[0].Message != "Magic link sent to a@b.c" {
		t.Errorf("alerts: got %v", a)
	}
}

func TestAuth_SignUp(t *testing.T) {
	h, _ := newServer(t)

	rr := send(t, h, http.MethodPost, "/api/v1/signup", map[string]string{
		"firstName": "Ada", "lastName": "Lovelace", "email": "ada@example.com",
		"password": "Secret1", "confirmPassword": "Secret2",
		"street": "1 Main St", "city": "Sydney", "state": "NSW",
		"postalCode": "2000", "country": "Choose a country", "contact": "0400000000",
	})
	wantStatus(t, rr, http.StatusUnprocessableEntity)
	errs := decode[outcomeBody](t, rr).Errors
	if errs["confirmPassword"] != "Passwords do not match" || errs["country"] != "Please select a country" || len(errs) != 2 {
		t.Errorf("errors: got %v", errs)
	}
}

func TestAuth_EmptyJSONBody(t *testing.T) {
	h, _ := newServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/login", nil)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	wantStatus(t, rr, http.StatusBadRequest)
}

// ── provider ─────────────────────────────────────────────────────────────────

func TestRouteServiceProvider_Boot(t *testing.T) {
	c := container.New()
	c.Instance("log", logging.Discard())
	c.Instance("router", routing.New())
	c.Instance("screens", screens.NewStore(0, nil))

	(&app.RouteServiceProvider{}).Boot(c)

	routes, err := container.Resolve[*routing.Router](c, "router").Routes()
	if err != nil {
		t.Fatal(err)
	}
	if len(routes) != 12 {
		t.Errorf("routes: got %d want 12: %v", len(routes), routes)
	}
}

func TestAPI_RejectsUnknownContentType(t *testing.T) {
	h, _ := newServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/login", strings.NewReader("<login/>"))
	req.Header.Set("Content-Type", "application/xml")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	wantStatus(t, rr, http.StatusUnsupportedMediaType)
}

func TestScreens_ActionsAreNotCached(t *testing.T) {
	h, _ := newServer(t)
	id := mount(t, h, "login").ID

	rr := send(t, h, http.MethodPost, "/api/v1/screens/"+id+"/navigate/back", nil)
	wantStatus(t, rr, http.StatusOK)
	if rr.Header().Get("Cache-Control") == "" {
		t.Error("screen actions should carry no-cache headers")
	}
}
