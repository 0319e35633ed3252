package storage

import (
	"context"
	"fmt"

	"swiftprints/internal/config"
	"swiftprints/internal/usecase/interfaces"
)

// FromConfig selects the blob backend named by STORAGE_BACKEND.
func FromConfig(ctx context.Context, cfg config.Config) (interfaces.IBlobStorage, error) {
	switch cfg.StorageBackend {
	case "local":
		return NewLocalStorage(cfg.LocalStorageDir), nil
	case "s3":
		if cfg.S3Bucket == "" {
			return nil, fmt.Errorf("s3 storage backend requires S3_BUCKET")
		}
		return NewS3Storage(ctx, cfg.AWSRegion, cfg.S3Bucket)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
