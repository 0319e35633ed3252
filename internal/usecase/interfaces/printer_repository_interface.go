package interfaces

import (
	"context"
	"swiftprints/internal/domain/entities"
)

// IPrinterRepository abstracts MySQL persistence for Printer.
//
// GetByID and List return printers with their filament offerings
// preloaded. Printers are never deleted; Update with Active=false is the
// only removal path.

type IPrinterRepository interface {
	Create(ctx context.Context, p entities.Printer) (entities.Printer, error)
	GetByID(ctx context.Context, id string) (entities.Printer, error)
	List(ctx context.Context, onlyActive bool) ([]entities.Printer, error)
	Update(ctx context.Context, p entities.Printer) (entities.Printer, error)
}
