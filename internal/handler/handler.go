// Package handler is the HTTP entry point after the router.
//
// It parses requests, runs input validation via the validation
// package, and only then executes endpoint logic. A handler body never
// sees a payload that failed binding or validation.
package handler
