// Package errors provides structured error handling for drain operations.
// It implements coded error types so callers can tell an invalid call,
// a closed sink, a production fault, and cooperative cancellation apart
// without string matching.
package errors
