package redis

import (
	"context"
	"hospital-records-service/internal/app/contracts"
	"time"
)

// noopRepository stands in when REDIS_ENABLED is false. Every Get is a miss.
type noopRepository struct{}

func NewNoopRedisRepository() contracts.RedisRepository {
	return noopRepository{}
}

func (noopRepository) Delete(ctx context.Context, key string) error {
	return nil
}

func (noopRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}

func (noopRepository) Get(ctx context.Context, key string) (string, error) {
	return "", nil
}
