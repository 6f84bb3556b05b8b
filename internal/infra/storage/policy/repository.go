// Package policy хранит конфигурацию расписания в key-value хранилище
// одним JSON-документом под фиксированным ключом.
package policy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tekom-dev/TKM-BookingService/internal/domain"
	"github.com/tekom-dev/TKM-BookingService/internal/infra/storage/kv"
)

const policyKey = "calendar-config"

// Repository репозиторий конфигурации расписания
type Repository struct {
	kv KV
}

// New создает новый репозиторий конфигурации
func New(store KV) *Repository {
	return &Repository{kv: store}
}

// Get читает сохраненную конфигурацию
func (r *Repository) Get(ctx context.Context) (*domain.SchedulingPolicy, error) {
	raw, err := r.kv.Get(ctx, policyKey)
	if err != nil {
		switch {
		case errors.Is(err, kv.ErrKeyNotFound):
			return nil, ErrPolicyNotFound
		case errors.Is(err, kv.ErrUnavailable):
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		default:
			return nil, fmt.Errorf("%w: failed to read policy: %v", ErrInternal, err)
		}
	}

	var p domain.SchedulingPolicy
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal policy: %v", ErrInternal, err)
	}

	return &p, nil
}

// Set сохраняет конфигурацию целиком, без срока жизни
func (r *Repository) Set(ctx context.Context, p *domain.SchedulingPolicy) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal policy: %v", ErrInternal, err)
	}

	if err := r.kv.Set(ctx, policyKey, string(raw), 0); err != nil {
		if errors.Is(err, kv.ErrUnavailable) {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return fmt.Errorf("%w: failed to write policy: %v", ErrInternal, err)
	}

	return nil
}
