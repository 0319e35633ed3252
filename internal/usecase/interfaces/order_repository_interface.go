package interfaces

import (
	"context"
	"swiftprints/internal/domain/entities"
)

// IOrderRepository abstracts MySQL persistence for Order.
//
// UpdateStatus only persists the new status; transition legality is
// checked by the use case before the call. Stats aggregates counts and the
// frozen revenue of completed orders for the admin dashboard.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context, filters entities.OrderFilters) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
	Stats(ctx context.Context) (entities.OrderStats, error)
}
