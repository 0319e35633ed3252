package interfaces

import (
	"context"
	"swiftprints/internal/domain/entities"
)

// INotifier abstracts customer email delivery.
//
// Delivery failures never roll back the triggering operation; callers log
// the error and continue.

type INotifier interface {
	SendOrderConfirmation(ctx context.Context, o entities.Order) error
	SendStatusUpdate(ctx context.Context, o entities.Order, previous entities.OrderStatus) error
}
