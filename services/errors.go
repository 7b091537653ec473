package services

import (
	"errors"
	"fmt"

	"grievance-api/models"
)

// Request-scoped failures. None of these are fatal to the process; controllers
// translate them to HTTP statuses.
var (
	// ErrGrievanceNotFound: no grievance with the requested id. Terminal.
	ErrGrievanceNotFound = errors.New("grievance not found")

	// ErrUnknownGrievance: a reply targeted a grievance id that does not
	// resolve. Terminal.
	ErrUnknownGrievance = errors.New("reply targets unknown grievance")

	// ErrEmptyMessage: reply message was empty after trimming. Correctable by
	// the caller.
	ErrEmptyMessage = errors.New("reply message is empty")

	// ErrInvalidStatus: status value outside the enumeration. Correctable by
	// the caller.
	ErrInvalidStatus = errors.New("invalid grievance status")
)

// StoreUnavailableError wraps a backing-store failure. Transient: the caller
// may retry with backoff. Note that retrying an append after an ambiguous
// failure is not idempotent and may duplicate a reply.
type StoreUnavailableError struct {
	Op  string
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("store unavailable during %s: %v", e.Op, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error { return e.Err }

// PartialSuccessError reports a reply that was persisted while the follow-up
// status/provenance write failed. The reply is kept (never rolled back); the
// caller must not report full success.
type PartialSuccessError struct {
	Reply *models.Reply
	Err   error
}

func (e *PartialSuccessError) Error() string {
	return fmt.Sprintf("reply %s persisted but status update failed: %v", e.Reply.ReplyID, e.Err)
}

func (e *PartialSuccessError) Unwrap() error { return e.Err }

func storeUnavailable(op string, err error) error {
	return &StoreUnavailableError{Op: op, Err: err}
}
