// Package validation provides struct-tag based validation for config
// structs, built on go-playground/validator. Failures are returned as
// coded INVALID_ARGUMENT errors with per-field details.
package validation
