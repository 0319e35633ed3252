package interfaces

import (
	"context"
	"swiftprints/internal/domain/entities"
)

// IUploadRepository abstracts MySQL persistence for Upload.
//
// Uploads are immutable: there is no update operation. Not-found lookups
// return a zero entity with a nil error; callers check the ID.

type IUploadRepository interface {
	Create(ctx context.Context, u entities.Upload) (entities.Upload, error)
	GetByID(ctx context.Context, id string) (entities.Upload, error)
}
