package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobPhotoStore_Put(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		publicBaseURL string
		want          string
	}{
		{name: "bare key", want: "fooddrive_20250412_101500_山田.jpg"},
		{
			name:          "public url",
			publicBaseURL: "https://photos.example.org/",
			want:          "https://photos.example.org/fooddrive_20250412_101500_%E5%B1%B1%E7%94%B0.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket := memblob.OpenBucket(nil)
			store := NewBlobPhotoStore(bucket, tt.publicBaseURL)
			defer store.Close()

			ref, err := store.Put(ctx, "fooddrive_20250412_101500_山田.jpg", []byte("jpeg"), "image/jpeg")
			require.NoError(t, err)
			assert.Equal(t, tt.want, ref)

			data, err := bucket.ReadAll(ctx, "fooddrive_20250412_101500_山田.jpg")
			require.NoError(t, err)
			assert.Equal(t, []byte("jpeg"), data)
		})
	}
}
