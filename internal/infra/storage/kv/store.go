// Package kv оборачивает redis в nil-безопасное key-value хранилище.
// Сервис стартует и без redis; вызовы тогда возвращают ErrUnavailable,
// а вызывающие слои сами решают, что делать с деградацией.
package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store key-value хранилище поверх redis
type Store struct {
	rdb *redis.Client
}

// NewStore создает хранилище. rdb может быть nil, тогда все операции
// возвращают ErrUnavailable.
func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Get возвращает значение ключа
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if s.rdb == nil {
		return "", ErrUnavailable
	}

	val, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: get %s: %v", ErrUnavailable, key, err)
	}

	return val, nil
}

// Set записывает значение ключа. ttl == 0 означает без срока жизни.
func (s *Store) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if s.rdb == nil {
		return ErrUnavailable
	}

	if err := s.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrUnavailable, key, err)
	}

	return nil
}

// Incr атомарно увеличивает счетчик и возвращает новое значение
func (s *Store) Incr(ctx context.Context, key string) (int64, error) {
	if s.rdb == nil {
		return 0, ErrUnavailable
	}

	val, err := s.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: incr %s: %v", ErrUnavailable, key, err)
	}

	return val, nil
}

// Expire выставляет срок жизни ключа
func (s *Store) Expire(ctx context.Context, key string, ttl time.Duration) error {
	if s.rdb == nil {
		return ErrUnavailable
	}

	if err := s.rdb.Expire(ctx, key, ttl).Err(); err != nil {
		return fmt.Errorf("%w: expire %s: %v", ErrUnavailable, key, err)
	}

	return nil
}
