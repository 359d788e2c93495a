// ABOUTME: Typed error kinds for the calculator core
// ABOUTME: ValidationError is always pre-mutation; OperationError may wrap a cause

package calc

import "fmt"

// ValidationError reports input rejected before any state change. A caller
// can always retry with corrected input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// OperationError reports a domain-invalid calculation, a missing operation
// strategy, or a persistence fault.
type OperationError struct {
	Msg string
	Err error

	// fault marks unexpected arithmetic failures, as opposed to domain
	// violations like division by zero. PerformOperation wraps faults in an
	// extra "Operation failed" layer.
	fault bool
}

func (e *OperationError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

func operationErrorf(format string, args ...any) *OperationError {
	return &OperationError{Msg: fmt.Sprintf(format, args...)}
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// calcFaultErrorf builds an OperationError for an unexpected arithmetic
// failure. The message always begins with "Calculation failed".
func calcFaultErrorf(format string, args ...any) *OperationError {
	return &OperationError{Msg: "Calculation failed: " + fmt.Sprintf(format, args...), fault: true}
}
