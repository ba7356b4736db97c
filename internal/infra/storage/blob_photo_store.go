// Package storage persists donation photos in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"foodbank/config"
	"foodbank/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
)

const defaultBucketURL = "mem://"

type blobPhotoStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBlobPhotoStore wraps an open bucket.
func NewBlobPhotoStore(bucket *blob.Bucket, publicBaseURL string) service.PhotoStore {
	return &blobPhotoStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Put writes data under key and returns its public reference: the public
// base URL joined with the key, or the bare key when none is configured.
func (s *blobPhotoStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return "", errors.Wrapf(err, "failed to write photo %s", key)
	}

	if s.publicBaseURL == "" {
		return key, nil
	}

	return s.publicBaseURL + "/" + url.PathEscape(key), nil
}

// Close releases the bucket.
func (s *blobPhotoStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}

// Params holds dependencies for the photo store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket. Without configuration photos go to an
// in-memory bucket and are lost on restart.
func New(params Params) (service.PhotoStore, error) {
	bucketURL := defaultBucketURL
	publicBaseURL := ""
	if cfg := params.Config.Storage; cfg != nil && cfg.BucketURL != "" {
		bucketURL = cfg.BucketURL
		publicBaseURL = cfg.PublicBaseURL
	} else {
		params.Logger.Warn("Storage not configured, donation photos are kept in memory")
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	store := NewBlobPhotoStore(bucket, publicBaseURL)

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}
