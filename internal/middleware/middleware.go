// Package middleware holds the HTTP middleware stack.
//
// Middlewares intercept requests to handle cross-cutting concerns:
// request correlation IDs, request-scoped logging, CORS, panic
// recovery, secure headers, Prometheus metrics, and the global error
// handler that shapes every error response.
package middleware
