package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/photo-sanitizer/internal/infrastructure/config"
	"github.com/marcos-nsantos/photo-sanitizer/internal/infrastructure/storage"
)

func TestS3Storage_URL(t *testing.T) {
	base := config.S3Config{
		Endpoint:        "http://localhost:9000",
		Region:          "us-east-1",
		Bucket:          "archives",
		AccessKeyID:     "minio",
		SecretAccessKey: "minio123",
		UsePathStyle:    true,
	}

	t.Run("public base url", func(t *testing.T) {
		cfg := base
		cfg.PublicURL = "https://cdn.example.com/"
		s, err := storage.NewS3Storage(cfg)
		require.NoError(t, err)

		url, err := s.URL(context.Background(), "archives/batch.zip", time.Hour)

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/archives/batch.zip", url)
	})

	t.Run("presigned link", func(t *testing.T) {
		s, err := storage.NewS3Storage(base)
		require.NoError(t, err)

		url, err := s.URL(context.Background(), "archives/batch.zip", 24*time.Hour)

		require.NoError(t, err)
		assert.Contains(t, url, "http://localhost:9000/archives/archives/batch.zip")
		assert.Contains(t, url, "X-Amz-Expires=86400")
		assert.Contains(t, url, "X-Amz-Signature=")
	})
}
