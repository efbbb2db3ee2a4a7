// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /elections", middleware.WithLogging(handler))

Logs request completion with method, path, status and duration_ms.

# CORS Middleware

A UI served from another local origin (a dev server, a webview) needs:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, PUT, DELETE, OPTIONS with headers
Content-Type and X-Device-UUID.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "Candidate not found")
	middleware.ValidationErrorResponse(w, err)

ValidationErrorResponse reports every FieldError of a models.ValidationError
in the "fields" array of the error body.
*/
package middleware
