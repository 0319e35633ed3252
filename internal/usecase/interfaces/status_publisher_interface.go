package interfaces

import (
	"context"
	"swiftprints/internal/domain/entities"
)

// IStatusPublisher fans order status changes out to live subscribers
// (Redis pub/sub feeding the websocket hub). Publish failures are logged
// by callers and never block the status update itself.

type IStatusPublisher interface {
	PublishOrderStatus(ctx context.Context, o entities.Order) error
}
