package storage

import (
	"context"
	"fmt"
	"strings"

	"realestate-backend/internal/config"
	"realestate-backend/pkg/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOStorage deletes previously uploaded property/blog images. Uploads
// happen outside this service; records arrive holding final object URLs.
type MinIOStorage struct {
	client *minio.Client
	bucket string
}

// NewMinIOStorage initializes the MinIO client
func NewMinIOStorage(cfg config.MinIOConfig) (*MinIOStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &MinIOStorage{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

// Delete removes a single object by key
func (s *MinIOStorage) Delete(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// DeleteByURL derives the object key from a stored image URL and removes
// the object. URLs whose key cannot be derived are skipped.
func (s *MinIOStorage) DeleteByURL(ctx context.Context, url string) error {
	key := KeyFromURL(url)
	if key == "" {
		return fmt.Errorf("cannot derive object key from url %q", url)
	}
	return s.Delete(ctx, key)
}

// DeleteAllByURLs removes every object referenced by the given URLs,
// best-effort. Failures are logged and do not stop the remaining deletes.
func (s *MinIOStorage) DeleteAllByURLs(ctx context.Context, urls []string) {
	for _, url := range urls {
		if err := s.DeleteByURL(ctx, url); err != nil {
			logger.Error("image cleanup failed", err)
		}
	}
}

// KeyFromURL extracts the object key from an upload URL.
// Example: ".../image/upload/v1234567/folder/image.jpg" -> "folder/image"
// The segment right after "upload" is a version marker and is skipped;
// the file extension is stripped. Returns "" when no key can be derived.
func KeyFromURL(url string) string {
	parts := strings.Split(url, "/")

	uploadIndex := -1
	for i, p := range parts {
		if p == "upload" {
			uploadIndex = i
			break
		}
	}
	if uploadIndex == -1 || uploadIndex+2 >= len(parts) {
		return ""
	}

	keyWithExt := strings.Join(parts[uploadIndex+2:], "/")
	dot := strings.LastIndex(keyWithExt, ".")
	if dot == -1 {
		return keyWithExt
	}
	return keyWithExt[:dot]
}
