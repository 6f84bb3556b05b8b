package policy

import (
	"context"
	"time"
)

// KV контракт key-value хранилища, в котором живет конфигурация
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
