package repository

import (
	"context"
	"time"
)

// CacheRepository stores serialized calculation results. A miss is reported
// as ok == false with a nil error.
type CacheRepository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
