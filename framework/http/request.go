package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/form/v4"
)

const (
	maxMemory   = 1 << 20 // multipart form data kept in memory
	maxBodySize = 1 << 20 // JSON bodies
)

// ErrEmptyBody is returned by Bind when a JSON request has no body.
var ErrEmptyBody = errors.New("empty request body")

var formDecoder = form.NewDecoder()

// Request wraps *http.Request with Laravel-style helpers.
type Request struct {
	raw *http.Request
}

// NewRequest wraps a standard *http.Request.
func NewRequest(r *http.Request) *Request {
	return &Request{raw: r}
}

// ── Binding ──────────────────────────────────────────────────────────────────

// Bind decodes the request body into v.
// Supports JSON and application/x-www-form-urlencoded / multipart.
// JSON fields map via `json:"name"`, form fields via `form:"name"`.
func (req *Request) Bind(v any) error {
	ct := req.ContentType()

	switch {
	case strings.Contains(ct, "application/json"):
		return req.bindJSON(v)
	case strings.Contains(ct, "multipart/form-data"):
		if err := req.raw.ParseMultipartForm(maxMemory); err != nil {
			return err
		}
		return formDecoder.Decode(v, url.Values(req.raw.MultipartForm.Value))
	default:
		if err := req.raw.ParseForm(); err != nil {
			return err
		}
		return formDecoder.Decode(v, req.raw.PostForm)
	}
}

func (req *Request) bindJSON(v any) error {
	defer req.raw.Body.Close()
	body, err := io.ReadAll(io.LimitReader(req.raw.Body, maxBodySize))
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return ErrEmptyBody
	}
	return json.Unmarshal(body, v)
}

// ── Input helpers ────────────────────────────────────────────────────────────

// RouteParam returns a URL route parameter (chi).
func (req *Request) RouteParam(key string) string {
	return chi.URLParam(req.raw, key)
}

// ContentType returns the Content-Type header value.
func (req *Request) ContentType() string {
	return req.raw.Header.Get("Content-Type")
}
