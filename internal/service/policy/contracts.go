package policy

import (
	"context"

	"github.com/tekom-dev/TKM-BookingService/internal/domain"
)

// PolicyRepository интерфейс репозитория конфигурации расписания
type PolicyRepository interface {
	Get(ctx context.Context) (*domain.SchedulingPolicy, error)
	Set(ctx context.Context, p *domain.SchedulingPolicy) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
