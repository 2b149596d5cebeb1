package errors

import (
	stderrors "errors"
	"fmt"
)

// DrainError is the unified error type for drain operations.
type DrainError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *DrainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *DrainError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *DrainError) WithCause(cause error) *DrainError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *DrainError) WithDetail(key string, value any) *DrainError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *DrainError) WithDetails(details map[string]any) *DrainError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// New creates a new DrainError with the given code and message.
func New(code ErrorCode, message string) *DrainError {
	return &DrainError{Code: code, Message: message}
}

// --- Common Error Constructors ---

// InvalidArgument creates a new DrainError for an invalid call.
func InvalidArgument(reason string) *DrainError {
	return &DrainError{
		Code: ErrCodeInvalidArgument, Message: reason,
	}
}

// SinkClosed creates a new DrainError for a write against a completed sink.
func SinkClosed() *DrainError {
	return &DrainError{
		Code: ErrCodeSinkClosed, Message: "sink is completed and accepts no further writes",
	}
}

// WriteFault creates a new DrainError for a failed sink write.
func WriteFault(cause error) *DrainError {
	return &DrainError{
		Code: ErrCodeWriteFault, Message: "write to sink failed", Cause: cause,
	}
}

// ProductionFault creates a new DrainError for an error raised while forcing an item.
func ProductionFault(cause error) *DrainError {
	return &DrainError{
		Code: ErrCodeProductionFault, Message: "producing an item failed", Cause: cause,
	}
}

// Cancelled creates a new DrainError for cooperative early termination.
func Cancelled(cause error) *DrainError {
	return &DrainError{
		Code: ErrCodeCancelled, Message: "operation cancelled before the source was exhausted", Cause: cause,
	}
}

// --- Inspection helpers ---

// CodeOf returns the error code carried by err, or "" if err carries none.
func CodeOf(err error) ErrorCode {
	var de *DrainError
	if stderrors.As(err, &de) {
		return de.Code
	}
	return ""
}

// IsCancelled reports whether err represents cooperative cancellation.
func IsCancelled(err error) bool {
	return CodeOf(err) == ErrCodeCancelled
}

// IsSinkClosed reports whether err represents a write against a completed sink.
func IsSinkClosed(err error) bool {
	return CodeOf(err) == ErrCodeSinkClosed
}

// IsInvalidArgument reports whether err represents an invalid call.
func IsInvalidArgument(err error) bool {
	return CodeOf(err) == ErrCodeInvalidArgument
}
