// Package errs defines the error types the API returns to clients.
//
// Every error that leaves the service is shaped as an HTTPError so
// clients always receive a consistent JSON envelope, including
// field-level detail for validation failures.
package errs
