package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Caller errors
const (
	// ErrCodeInvalidArgument indicates the operation was called with invalid arguments.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
)

// Sink errors
const (
	// ErrCodeSinkClosed indicates the sink was already completed when a write was attempted.
	ErrCodeSinkClosed ErrorCode = "SINK_CLOSED"
	// ErrCodeWriteFault indicates a write to the sink failed for a reason other than closure.
	ErrCodeWriteFault ErrorCode = "WRITE_FAULT"
)

// Source errors
const (
	// ErrCodeProductionFault indicates an error was raised while forcing an item.
	ErrCodeProductionFault ErrorCode = "PRODUCTION_FAULT"
)

// Termination
const (
	// ErrCodeCancelled indicates cooperative early termination, not a broken operation.
	ErrCodeCancelled ErrorCode = "CANCELLED"
)

// faultCodes are the codes that represent something going wrong, as opposed
// to the operation being told to stop.
var faultCodes = map[ErrorCode]bool{
	ErrCodeInvalidArgument: true,
	ErrCodeSinkClosed:      true,
	ErrCodeWriteFault:      true,
	ErrCodeProductionFault: true,
	ErrCodeCancelled:       false,
}

// IsFaultCode returns true if the error code indicates a fault rather than
// cooperative cancellation.
func IsFaultCode(code ErrorCode) bool {
	return faultCodes[code]
}
