package send_reminders

import (
	"context"

	sendReminders "github.com/tekom-dev/TKM-BookingService/internal/usecase/send_reminders"
)

type SendRemindersUseCase interface {
	Execute(ctx context.Context) (*sendReminders.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
