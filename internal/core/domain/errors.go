package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Concrete errors below wrap one of these so the transport
// layer can map them with errors.Is.
var (
	ErrValidation      = errors.New("validation failed")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("already registered")
	ErrExternalChannel = errors.New("external channel failure")
	ErrExternalTimeout = errors.New("external channel timeout")
)

var (
	ErrStudentNotFound     = fmt.Errorf("student %w", ErrNotFound)
	ErrTeacherNotFound     = fmt.Errorf("teacher %w", ErrNotFound)
	ErrEnrollmentCodeTaken = fmt.Errorf("enrollmentCode %w", ErrConflict)
	ErrEmployeeCodeTaken   = fmt.Errorf("employeeCode %w", ErrConflict)
	ErrCredentialMismatch  = errors.New("incorrect password")
	ErrInvalidSession      = errors.New("invalid session")
)

// ValidationError reports the first field of a record that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ExternalError wraps a failure of a collaborator outside the service
// (persistence, object storage, messaging). Op names the failed call.
type ExternalError struct {
	Op  string
	Err error
}

func (e *ExternalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ExternalError) Unwrap() error {
	return e.Err
}

func (e *ExternalError) Is(target error) bool {
	return target == ErrExternalChannel
}
