package bookings

import (
	"context"
	"time"

	"github.com/tekom-dev/TKM-BookingService/internal/domain"
	"github.com/tekom-dev/TKM-BookingService/internal/integrations/resend"
	"github.com/tekom-dev/TKM-BookingService/pkg/types"
)

// RecordStore интерфейс базы записей бронирований
type RecordStore interface {
	GetRecord(ctx context.Context, recordID string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, recordID string, status domain.BookingStatus) error
	UpdateMeeting(ctx context.Context, recordID string, start time.Time, durationMinutes int) error
}

// CalendarClient интерфейс клиента календаря
type CalendarClient interface {
	UpdateEventTime(ctx context.Context, eventID, date string, startTime types.TimeString, durationMinutes int) error
	DeleteEvent(ctx context.Context, eventID string) error
}

// Mailer интерфейс отправки писем
type Mailer interface {
	SendConfirmation(ctx context.Context, email resend.ConfirmationEmail) error
	SendCancellation(ctx context.Context, email resend.CancellationEmail) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
