package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestDrainError_New(t *testing.T) {
	err := New(ErrCodeSinkClosed, "closed")
	if err.Code != ErrCodeSinkClosed {
		t.Errorf("expected code %s, got %s", ErrCodeSinkClosed, err.Code)
	}
	if err.Message != "closed" {
		t.Errorf("expected message 'closed', got %q", err.Message)
	}
}

func TestDrainError_Error_WithCause(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := ProductionFault(cause)
	if !strings.Contains(err.Error(), "PRODUCTION_FAULT") {
		t.Errorf("error string should contain code, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error string should contain cause, got %q", err.Error())
	}
}

func TestDrainError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := WriteFault(cause)
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should reach the cause through Unwrap")
	}
}

func TestDrainError_WithDetail(t *testing.T) {
	err := InvalidArgument("max_concurrency must be at least 1").
		WithDetail("max_concurrency", 0)
	if err.Details["max_concurrency"] != 0 {
		t.Errorf("expected detail max_concurrency=0, got %v", err.Details["max_concurrency"])
	}
}

func TestDrainError_WithDetails_Merge(t *testing.T) {
	err := SinkClosed().WithDetail("capacity", 1)
	err = err.WithDetails(map[string]any{"workers": 2})
	if err.Details["capacity"] != 1 || err.Details["workers"] != 2 {
		t.Errorf("expected merged details, got %v", err.Details)
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(SinkClosed()); got != ErrCodeSinkClosed {
		t.Errorf("expected SINK_CLOSED, got %s", got)
	}
	wrapped := fmt.Errorf("outer: %w", Cancelled(nil))
	if got := CodeOf(wrapped); got != ErrCodeCancelled {
		t.Errorf("CodeOf should see through wrapping, got %s", got)
	}
	if got := CodeOf(fmt.Errorf("plain")); got != "" {
		t.Errorf("plain error should carry no code, got %s", got)
	}
	if got := CodeOf(nil); got != "" {
		t.Errorf("nil error should carry no code, got %s", got)
	}
}

func TestInspectionHelpers(t *testing.T) {
	if !IsCancelled(Cancelled(nil)) {
		t.Error("IsCancelled should match a CANCELLED error")
	}
	if IsCancelled(SinkClosed()) {
		t.Error("IsCancelled should not match SINK_CLOSED")
	}
	if !IsSinkClosed(SinkClosed()) {
		t.Error("IsSinkClosed should match a SINK_CLOSED error")
	}
	if !IsInvalidArgument(InvalidArgument("bad")) {
		t.Error("IsInvalidArgument should match an INVALID_ARGUMENT error")
	}
}

func TestIsFaultCode(t *testing.T) {
	if IsFaultCode(ErrCodeCancelled) {
		t.Error("CANCELLED is not a fault")
	}
	for _, code := range []ErrorCode{ErrCodeInvalidArgument, ErrCodeSinkClosed, ErrCodeWriteFault, ErrCodeProductionFault} {
		if !IsFaultCode(code) {
			t.Errorf("%s should be a fault code", code)
		}
	}
}
