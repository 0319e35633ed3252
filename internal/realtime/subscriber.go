package realtime

import (
	"context"
	"log"

	"swiftprints/internal/infrastructure/cache"

	"github.com/redis/go-redis/v9"
)

// Subscribe relays status events from the Redis channel to the hub
// until ctx is cancelled. Run it in its own goroutine.
func Subscribe(ctx context.Context, rdb *redis.Client, hub *Hub) {
	pubsub := rdb.Subscribe(ctx, cache.ChannelOrderStatus)
	defer pubsub.Close()

	log.Printf("[realtime][subscribe] listening on %s", cache.ChannelOrderStatus)
	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			hub.Broadcast([]byte(msg.Payload))
		}
	}
}
