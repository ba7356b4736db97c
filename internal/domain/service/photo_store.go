package service

import "context"

// PhotoStore persists donation photos and returns a reference to them.
type PhotoStore interface {
	// Put stores data under key and returns the public reference.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Close releases the underlying bucket.
	Close() error
}
