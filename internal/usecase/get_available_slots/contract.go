package get_available_slots

import (
	"context"
	"time"

	"github.com/tekom-dev/TKM-BookingService/internal/domain"
	"github.com/tekom-dev/TKM-BookingService/internal/integrations/msgraph"
)

// CalendarClient интерфейс клиента календаря
type CalendarClient interface {
	// ListEvents получает события календаря в диапазоне [from, to]
	ListEvents(ctx context.Context, from, to time.Time) ([]msgraph.Event, error)
}

// PolicyProvider интерфейс получения конфигурации расписания
type PolicyProvider interface {
	// Get возвращает действующую конфигурацию (с дефолтами при отсутствии)
	Get(ctx context.Context) (*domain.SchedulingPolicy, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
