package interfaces

import (
	"context"
	"swiftprints/internal/domain/entities"
)

// IFilamentRepository abstracts MySQL persistence for FilamentPricing.
//
// Create must enforce the (printer_id, filament_type) uniqueness
// constraint and surface violations as ErrDuplicateFilamentType.

type IFilamentRepository interface {
	Create(ctx context.Context, f entities.FilamentPricing) (entities.FilamentPricing, error)
	GetByID(ctx context.Context, id string) (entities.FilamentPricing, error)
	ListByPrinter(ctx context.Context, printerID string) ([]entities.FilamentPricing, error)
	ListActiveByType(ctx context.Context, filamentType string) ([]entities.FilamentPricing, error)
	Update(ctx context.Context, f entities.FilamentPricing) (entities.FilamentPricing, error)
}
