package create_booking

import (
	"context"

	"github.com/tekom-dev/TKM-BookingService/internal/integrations/msgraph"
	"github.com/tekom-dev/TKM-BookingService/internal/integrations/notion"
	"github.com/tekom-dev/TKM-BookingService/internal/integrations/resend"
)

// CalendarClient интерфейс клиента календаря
type CalendarClient interface {
	// CreateEvent создает событие со ссылкой на онлайн-встречу
	CreateEvent(ctx context.Context, req msgraph.CreateEventRequest) (*msgraph.EventResult, error)
}

// RecordStore интерфейс базы записей бронирований
type RecordStore interface {
	// CreateRecord создает запись и возвращает ее идентификатор
	CreateRecord(ctx context.Context, req notion.CreateRecordRequest) (string, error)
	// AttachCV прикрепляет файл резюме к записи
	AttachCV(ctx context.Context, recordID, fileName, contentType string, content []byte) error
}

// Mailer интерфейс отправки писем
type Mailer interface {
	SendConfirmation(ctx context.Context, email resend.ConfirmationEmail) error
	SendCVBackup(ctx context.Context, email resend.CVBackupEmail) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
