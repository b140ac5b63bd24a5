package models

import "fmt"

// FieldErrors maps a form field name to a human-readable message.
type FieldErrors map[string]string

// ValidationError signals malformed input to a mutation or a checkout form
// that failed field-level validation. State is left unchanged by the callee.
type ValidationError struct {
	Message string
	Fields  FieldErrors
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s (%d invalid fields)", e.Message, len(e.Fields))
	}
	return e.Message
}

// NotFoundError signals that a referenced entity does not exist.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.Key)
}

// PersistenceError signals a failed durable-storage write. The in-memory
// mutation still stands for the current session; callers surface the error
// instead of rolling back, since a reload would lose the unpersisted state.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// SubmissionError signals a failed checkout submission. Retryable submissions
// never clear the cart or write an order.
type SubmissionError struct {
	Reason    string
	Retryable bool
	Err       error
}

func (e *SubmissionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("order submission failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("order submission failed: %s", e.Reason)
}

func (e *SubmissionError) Unwrap() error { return e.Err }
