package update_calendar_config

import (
	"context"

	"github.com/tekom-dev/TKM-BookingService/internal/domain"
)

type PolicyService interface {
	Replace(ctx context.Context, p *domain.SchedulingPolicy) (*domain.SchedulingPolicy, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
