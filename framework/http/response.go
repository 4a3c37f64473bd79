package http

import (
	"encoding/json"
	"net/http"

	"github.com/km-arc/expense-share/framework/http/validation"
)

// ── Response ─────────────────────────────────────────────────────────────────

// Response wraps http.ResponseWriter with Laravel-style helpers.
type Response struct {
	w http.ResponseWriter
}

// NewResponse wraps a ResponseWriter.
func NewResponse(w http.ResponseWriter) *Response {
	return &Response{w: w}
}

// ── JSON responses ────────────────────────────────────────────────────────────

// JSON sends a JSON response.
//
//	res.JSON(http.StatusOK, map[string]any{"message": "ok"})
func (res *Response) JSON(status int, data any) {
	res.w.Header().Set("Content-Type", "application/json")
	res.w.WriteHeader(status)
	_ = json.NewEncoder(res.w).Encode(data)
}

// Success sends 200 JSON: {"data": v}
func (res *Response) Success(v any) {
	res.JSON(http.StatusOK, Envelope{"data": v})
}

// Created sends 201 JSON: {"data": v}
func (res *Response) Created(v any) {
	res.JSON(http.StatusCreated, Envelope{"data": v})
}

// Accepted sends 202 JSON: {"data": v}
func (res *Response) Accepted(v any) {
	res.JSON(http.StatusAccepted, Envelope{"data": v})
}

// NoContent sends 204 with no body.
func (res *Response) NoContent() {
	res.w.WriteHeader(http.StatusNoContent)
}

// Error sends a JSON error response.
//
//	res.Error(http.StatusNotFound, "Resource not found")
func (res *Response) Error(status int, message string) {
	res.JSON(status, Envelope{"message": message})
}

// NotFound sends 404.
func (res *Response) NotFound(message ...string) {
	res.Error(http.StatusNotFound, first(message, "Not found."))
}

// TooManyRequests sends 429.
func (res *Response) TooManyRequests(message ...string) {
	res.Error(http.StatusTooManyRequests, first(message, "Too Many Attempts."))
}

// ServerError sends 500.
func (res *Response) ServerError(message ...string) {
	res.Error(http.StatusInternalServerError, first(message, "Server Error."))
}

// ValidationError sends 422 with the error bag, merged with any extra keys.
//
//	res.ValidationError(form.Errors())                          // {"errors": {...}}
//	res.ValidationError(form.Errors(), Envelope{"alerts": a})   // {"errors": {...}, "alerts": [...]}
func (res *Response) ValidationError(errors *validation.Errors, extra ...Envelope) {
	body := Envelope{"errors": errors.Map()}
	for _, e := range extra {
		for k, v := range e {
			body[k] = v
		}
	}
	res.JSON(http.StatusUnprocessableEntity, body)
}

// ── Helpers ──────────────────────────────────────────────────────────────────

// Envelope is a JSON object body.
type Envelope map[string]any

func first(ss []string, fallback string) string {
	if len(ss) > 0 && ss[0] != "" {
		return ss[0]
	}
	return fallback
}
