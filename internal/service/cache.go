package service

import (
	"context"
	"time"

	"resepku/internal/cache"
)

// Cache is the subset of the redis wrapper the services depend on.
// Implementations must fail safe: a miss and an unreachable backend both
// read as (nil, nil), so callers never branch on cache errors.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

var _ Cache = (*cache.Client)(nil)
