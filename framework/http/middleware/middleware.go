// Package middleware holds the HTTP middleware the application installs on
// its router.
package middleware

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	gohttp "github.com/km-arc/expense-share/framework/http"
)

// RequestLogger logs one line per request with method, path, status and
// duration.
func RequestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				logger.Info("request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration", time.Since(start),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

// Throttle rejects requests with 429 once the shared token bucket is empty.
// A non-positive rps disables throttling.
func Throttle(rps float64, burst int) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				gohttp.NewResponse(w).TooManyRequests()
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
