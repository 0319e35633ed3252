package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"swiftprints/internal/domain/entities"
	"swiftprints/internal/infrastructure/cache"
	"swiftprints/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// StatusEvent is the wire shape of one order status change, both on the
// Redis channel and on the websocket.
type StatusEvent struct {
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RedisPublisher pushes status events onto the Redis channel and
// refreshes the per-order status cache key.

type RedisPublisher struct {
	rdb *redis.Client
}

var _ interfaces.IStatusPublisher = (*RedisPublisher)(nil)

func NewRedisPublisher(rdb *redis.Client) *RedisPublisher {
	return &RedisPublisher{rdb: rdb}
}

func (p *RedisPublisher) PublishOrderStatus(ctx context.Context, o entities.Order) error {
	event := StatusEvent{
		OrderID:   o.ID,
		Status:    string(o.Status),
		UpdatedAt: o.UpdatedAt,
	}
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	statusKey := fmt.Sprintf(cache.KeyOrderStatus, o.ID)
	if err := p.rdb.Set(ctx, statusKey, string(o.Status), cache.TTLStatusCache).Err(); err != nil {
		return err
	}
	return p.rdb.Publish(ctx, cache.ChannelOrderStatus, body).Err()
}
