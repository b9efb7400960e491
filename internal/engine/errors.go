package engine

import "fmt"

// StoreUnavailableError indicates a read against the ledger store failed
// during evaluation. The pipeline fails closed: no verdict is produced.
type StoreUnavailableError struct {
	Op  string
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("store unavailable during %s: %v", e.Op, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}

func (e *StoreUnavailableError) Is(target error) bool {
	_, ok := target.(*StoreUnavailableError)
	return ok
}

// NotRecordedError indicates a verdict was produced but the commit did not
// persist. Nothing is written; the caller must treat the check as not
// having happened.
type NotRecordedError struct {
	TransactionID string
	Err           error
}

func (e *NotRecordedError) Error() string {
	return fmt.Sprintf("verdict for transaction %s not recorded: %v", e.TransactionID, e.Err)
}

func (e *NotRecordedError) Unwrap() error {
	return e.Err
}

func (e *NotRecordedError) Is(target error) bool {
	_, ok := target.(*NotRecordedError)
	return ok
}

// InvariantViolationError indicates internal state the engine considers
// impossible, such as a negative rule score.
type InvariantViolationError struct {
	Message string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("invariant violation: %s", e.Message)
}

func (e *InvariantViolationError) Is(target error) bool {
	_, ok := target.(*InvariantViolationError)
	return ok
}
