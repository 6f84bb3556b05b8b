// Package ratelimit ограничивает частоту бронирований по ключу клиента.
// Счетчик в key-value хранилище с окном по TTL; при недоступности
// хранилища лимитер пропускает запросы (fail-open).
package ratelimit

import (
	"context"
	"fmt"
	"time"
)

// Counter контракт счетчика с TTL
type Counter interface {
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Limiter лимитер фиксированного окна
type Limiter struct {
	counter Counter
	max     int64
	window  time.Duration
	log     Logger
}

// New создает лимитер: не более max срабатываний на ключ за window
func New(counter Counter, max int, window time.Duration, log Logger) *Limiter {
	return &Limiter{
		counter: counter,
		max:     int64(max),
		window:  window,
		log:     log,
	}
}

// CheckAndConsume учитывает попытку и сообщает, разрешена ли она
// и сколько попыток осталось в текущем окне.
func (l *Limiter) CheckAndConsume(ctx context.Context, key string) (allowed bool, remaining int, err error) {
	counterKey := fmt.Sprintf("rate-limit:%s", key)

	count, err := l.counter.Incr(ctx, counterKey)
	if err != nil {
		l.log.Warn("ratelimit: counter unavailable, allowing request: %v", err)
		return true, int(l.max), nil
	}

	// Окно начинается с первого срабатывания
	if count == 1 {
		if err := l.counter.Expire(ctx, counterKey, l.window); err != nil {
			l.log.Warn("ratelimit: failed to set window ttl for %s: %v", counterKey, err)
		}
	}

	if count > l.max {
		return false, 0, nil
	}

	return true, int(l.max - count), nil
}
