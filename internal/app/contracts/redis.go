package contracts

import (
	"context"
	"time"
)

// RedisRepository stores JSON encoded values. Get returns an empty string and
// no error on a cache miss.
type RedisRepository interface {
	Delete(ctx context.Context, key string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
}
