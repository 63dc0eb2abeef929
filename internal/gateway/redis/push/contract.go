package push

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type client interface {
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}
