package send_reminders

import (
	"context"
	"time"

	"github.com/tekom-dev/TKM-BookingService/internal/domain"
	"github.com/tekom-dev/TKM-BookingService/internal/integrations/resend"
)

// RecordStore интерфейс базы записей бронирований
type RecordStore interface {
	// QueryScheduled возвращает все запланированные бронирования
	QueryScheduled(ctx context.Context) ([]domain.Booking, error)
}

// Mailer интерфейс отправки писем
type Mailer interface {
	SendReminder(ctx context.Context, email resend.ReminderEmail) error
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
