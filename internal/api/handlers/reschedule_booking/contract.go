package reschedule_booking

import (
	"context"

	"github.com/tekom-dev/TKM-BookingService/internal/domain"
)

type BookingsService interface {
	Reschedule(ctx context.Context, bookingID string, slot domain.Slot) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
