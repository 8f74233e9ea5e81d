package game

import "fmt"

// OperationError wraps errors from model operations with additional context.
// Callers use errors.Is with the domain sentinels (for example
// domain.ErrIndexOutOfRange) or errors.As to get the operation details.
type OperationError struct {
	// Operation is the operation that failed (e.g., "select_card")
	Operation string
	// Index is the card index the operation was called with
	Index int
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for OperationError.
func (e *OperationError) Error() string {
	return fmt.Sprintf("%s operation failed for index %d: %v", e.Operation, e.Index, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *OperationError) Unwrap() error {
	return e.Err
}

// NewSelectCardError returns a new OperationError for the select_card operation.
func NewSelectCardError(index int, err error) *OperationError {
	return &OperationError{
		Operation: "select_card",
		Index:     index,
		Err:       err,
	}
}
