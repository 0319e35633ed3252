package interfaces

import "context"

// IBlobStorage abstracts where raw STL bytes live (local disk or S3).
// Keys are opaque strings minted by the upload use case.

type IBlobStorage interface {
	Save(ctx context.Context, key string, data []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
}
