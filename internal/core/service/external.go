package service

import (
	"context"
	"errors"
	"time"

	"github.com/DioneMartin/REST-AWS/internal/api/metrics"
	"github.com/DioneMartin/REST-AWS/internal/core/domain"
)

const defaultExternalTimeout = 5 * time.Second

// external bounds every call to a collaborator outside the service and
// classifies its failure.
type external struct {
	timeout time.Duration
}

func newExternal(timeout time.Duration) external {
	if timeout <= 0 {
		timeout = defaultExternalTimeout
	}
	return external{timeout: timeout}
}

// call runs fn under the configured timeout. Domain errors returned by fn
// pass through unchanged; a deadline becomes domain.ErrExternalTimeout and
// anything else a *domain.ExternalError tagged with op.
func (x external) call(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, x.timeout)
	defer cancel()

	start := time.Now()
	err := classify(op, fn(ctx))

	result := "ok"
	switch {
	case errors.Is(err, domain.ErrExternalTimeout):
		result = "timeout"
	case errors.Is(err, domain.ErrExternalChannel):
		result = "error"
	}
	metrics.ExternalCallDuration.WithLabelValues(op, result).Observe(time.Since(start).Seconds())

	return err
}

func classify(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case isDomainError(err):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return &domain.ExternalError{Op: op, Err: domain.ErrExternalTimeout}
	default:
		return &domain.ExternalError{Op: op, Err: err}
	}
}

func isDomainError(err error) bool {
	for _, kind := range []error{
		domain.ErrValidation,
		domain.ErrNotFound,
		domain.ErrConflict,
		domain.ErrCredentialMismatch,
		domain.ErrInvalidSession,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
