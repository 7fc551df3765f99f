package ports

import (
	"context"
	"io"

	"github.com/DioneMartin/REST-AWS/internal/core/domain"
)

// ObjectStorage writes binary payloads and returns a public locator.
type ObjectStorage interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// Notifier delivers a notification. Delivery is fire-and-forget beyond the
// returned error.
type Notifier interface {
	Publish(ctx context.Context, n domain.Notification) error
}
