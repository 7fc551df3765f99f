// Package storage implements ports.ObjectStorage.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/kurin/blazer/b2"
)

// B2Config captures the Backblaze B2 credentials and target bucket.
type B2Config struct {
	AccountID      string
	ApplicationKey string
	Bucket         string
}

// B2Storage writes objects to a public Backblaze B2 bucket.
type B2Storage struct {
	client *b2.Client
	bucket *b2.Bucket
}

// NewB2Storage authorises the account and resolves the bucket.
func NewB2Storage(ctx context.Context, cfg B2Config) (*B2Storage, error) {
	client, err := b2.NewClient(ctx, cfg.AccountID, cfg.ApplicationKey)
	if err != nil {
		return nil, fmt.Errorf("b2 client: %w", err)
	}

	bucket, err := client.Bucket(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("b2 bucket %q: %w", cfg.Bucket, err)
	}

	return &B2Storage{client: client, bucket: bucket}, nil
}

// Put streams body to key and returns the object's public URL. A failed copy
// cancels the writer's context so no partial object is committed.
func (s *B2Storage) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	obj := s.bucket.Object(key)
	w := obj.NewWriter(ctx).WithAttrs(&b2.Attrs{ContentType: contentType})

	if _, err := io.Copy(w, body); err != nil {
		cancel()
		_ = w.Close()
		return "", fmt.Errorf("b2 write %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("b2 close %s: %w", key, err)
	}

	return obj.URL(), nil
}
