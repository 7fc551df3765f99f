package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DioneMartin/REST-AWS/internal/core/domain"
)

func TestExternalCall_Classification(t *testing.T) {
	x := newExternal(50 * time.Millisecond)
	ctx := context.Background()

	if err := x.call(ctx, "op.ok", func(context.Context) error { return nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	notFound := fmt.Errorf("find: %w", domain.ErrStudentNotFound)
	if err := x.call(ctx, "op.domain", func(context.Context) error { return notFound }); err != notFound {
		t.Fatalf("domain error not passed through: %v", err)
	}

	err := x.call(ctx, "op.fail", func(context.Context) error { return errBackend })
	var ext *domain.ExternalError
	if !errors.As(err, &ext) || ext.Op != "op.fail" || !errors.Is(err, errBackend) {
		t.Fatalf("expected ExternalError wrapping cause, got %v", err)
	}

	err = x.call(ctx, "op.slow", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	if !errors.Is(err, domain.ErrExternalTimeout) || !errors.Is(err, domain.ErrExternalChannel) {
		t.Fatalf("expected timeout external error, got %v", err)
	}
}

func TestNewExternal_DefaultTimeout(t *testing.T) {
	if got := newExternal(0).timeout; got != defaultExternalTimeout {
		t.Fatalf("timeout = %v, want %v", got, defaultExternalTimeout)
	}
}
