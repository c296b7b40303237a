// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	handler := middleware.WithLogging(next.ServeHTTP)

Logs request start (request_id, method, path, remote) and completion
(status, size, duration_ms). The request id is taken from X-Request-ID or
generated, and is echoed back in the response.

# CORS Middleware

Enable cross-origin requests for a URL prefix only:

	handler := middleware.CORS(next, middleware.CORSPolicy{
		PathPrefix:     "/api/",
		AllowedOrigins: []string{"*"},
	})

Requests outside the prefix receive no CORS headers. Preflight requests
under the prefix are answered directly with the allowed methods and the
requested headers.

# Error Pages

	middleware.ErrorPage(w, http.StatusNotFound, "")

WithErrorPages wraps a ServeMux so unmatched requests get HTML 404/405
documents instead of the mux's plain-text bodies. Recover converts handler
panics into a 500 page.

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
