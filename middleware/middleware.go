// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/danielhkuo/juego-fantastico/models"
)

const RequestIDHeader = "X-Request-ID"

// statusRecorder captures the status code and body size written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 0 {
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// WithLogging wraps a handler with request logging
func WithLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		// Log request
		slog.Info("request started",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"remote", GetClientIP(r),
		)

		rec := &statusRecorder{ResponseWriter: w}
		next(rec, r)

		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}

		// Log completion
		duration := time.Since(start)
		slog.Info("request completed",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"size", humanize.Bytes(uint64(rec.bytes)),
			"duration_ms", duration.Milliseconds(),
		)
	}
}

// CORSPolicy scopes cross-origin access to a URL path prefix
type CORSPolicy struct {
	PathPrefix     string   // e.g. "/api/"
	AllowedOrigins []string // "*" allows any origin
	AllowedMethods []string // defaults to DefaultCORSMethods
}

var DefaultCORSMethods = []string{"DELETE", "GET", "HEAD", "OPTIONS", "PATCH", "POST", "PUT"}

// Matches reports whether path falls under the policy prefix.
// "/api/" matches "/api" as well as everything below it.
func (p CORSPolicy) Matches(path string) bool {
	if p.PathPrefix == "" {
		return true
	}
	if strings.HasPrefix(path, p.PathPrefix) {
		return true
	}
	return path == strings.TrimSuffix(p.PathPrefix, "/")
}

// allowOrigin returns the Access-Control-Allow-Origin value for origin, or ""
func (p CORSPolicy) allowOrigin(origin string) string {
	for _, o := range p.AllowedOrigins {
		if o == "*" {
			return "*"
		}
		if origin != "" && o == origin {
			return origin
		}
	}
	return ""
}

// CORS applies policy to requests under its path prefix. Requests outside
// the prefix pass through without any CORS headers.
func CORS(next http.Handler, policy CORSPolicy) http.Handler {
	methods := policy.AllowedMethods
	if len(methods) == 0 {
		methods = DefaultCORSMethods
	}
	allowMethods := strings.Join(methods, ", ")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !policy.Matches(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		allowed := policy.allowOrigin(r.Header.Get("Origin"))
		if allowed == "" {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Access-Control-Allow-Origin", allowed)
		if allowed != "*" {
			w.Header().Add("Vary", "Origin")
		}

		// Handle preflight requests
		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			w.Header().Set("Access-Control-Allow-Methods", allowMethods)
			if reqHeaders := r.Header.Get("Access-Control-Request-Headers"); reqHeaders != "" {
				w.Header().Set("Access-Control-Allow-Headers", reqHeaders)
			}
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Recover turns a panicking handler into a 500 error page.
// With showDetail the panic value is included in the page.
func Recover(next http.Handler, showDetail bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			slog.Error("handler panicked",
				"method", r.Method,
				"path", r.URL.Path,
				"panic", v,
				"stack", string(debug.Stack()),
			)
			detail := ""
			if showDetail {
				detail = fmt.Sprint(v)
			}
			ErrorPage(w, http.StatusInternalServerError, detail)
		}()
		next.ServeHTTP(w, r)
	})
}

var errorPageTemplate = template.Must(template.New("error").Parse(`<!doctype html>
<html lang="en">
<title>{{.Status}} {{.StatusText}}</title>
<h1>{{.StatusText}}</h1>
<p>{{.Message}}</p>
{{if .Detail}}<pre>{{.Detail}}</pre>
{{end}}`))

var errorMessages = map[int]string{
	http.StatusNotFound:            "The requested URL was not found on the server. If you entered the URL manually please check your spelling and try again.",
	http.StatusMethodNotAllowed:    "The method is not allowed for the requested URL.",
	http.StatusInternalServerError: "The server encountered an internal error and was unable to complete your request. Either the server is overloaded or there is an error in the application.",
}

// ErrorPage writes an HTML error document for status
func ErrorPage(w http.ResponseWriter, status int, detail string) {
	msg, ok := errorMessages[status]
	if !ok {
		msg = http.StatusText(status)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Del("Content-Length")
	w.WriteHeader(status)
	err := errorPageTemplate.Execute(w, models.ErrorPage{
		Status:     status,
		StatusText: http.StatusText(status),
		Message:    msg,
		Detail:     detail,
	})
	if err != nil {
		slog.Error("failed to write error page", "status", status, "error", err)
	}
}

// errorPageWriter replaces the plain-text 404/405 bodies written by
// http.ServeMux with ErrorPage documents
type errorPageWriter struct {
	http.ResponseWriter
	replaced bool
}

func (w *errorPageWriter) WriteHeader(code int) {
	if code == http.StatusNotFound || code == http.StatusMethodNotAllowed {
		w.replaced = true
		ErrorPage(w.ResponseWriter, code, "")
		return
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *errorPageWriter) Write(b []byte) (int, error) {
	if w.replaced {
		return len(b), nil
	}
	return w.ResponseWriter.Write(b)
}

func (w *errorPageWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// WithErrorPages serves mux, rendering HTML error pages for requests that
// match no registered pattern. Responses from matched handlers are untouched.
func WithErrorPages(mux *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, pattern := mux.Handler(r); pattern == "" {
			mux.ServeHTTP(&errorPageWriter{ResponseWriter: w}, r)
			return
		}
		mux.ServeHTTP(w, r)
	})
}

// GetClientIP extracts the client IP address
// Checks X-Forwarded-For, X-Real-IP, then falls back to RemoteAddr
func GetClientIP(r *http.Request) string {
	// Check X-Forwarded-For (load balancers), first hop wins
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	// Check X-Real-IP (nginx)
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
