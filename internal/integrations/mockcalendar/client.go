// Package mockcalendar подменяет Microsoft Graph, когда учетные данные
// не заданы. Бронирование работает без реального календаря.
package mockcalendar

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tekom-dev/TKM-BookingService/internal/integrations/msgraph"
	"github.com/tekom-dev/TKM-BookingService/pkg/types"
)

const mockMeetingLink = "https://teams.microsoft.com/l/meetup-join/mock-meeting-link"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Client заглушка календаря. Событий не хранит, занятость всегда пустая.
type Client struct {
	log Logger
}

// NewClient создает новый экземпляр mock-клиента
func NewClient(log Logger) *Client {
	return &Client{log: log}
}

// ListEvents всегда возвращает пустой список занятости
func (c *Client) ListEvents(_ context.Context, _, _ time.Time) ([]msgraph.Event, error) {
	return nil, nil
}

// CreateEvent возвращает синтетический идентификатор и фиксированную ссылку
func (c *Client) CreateEvent(_ context.Context, req msgraph.CreateEventRequest) (*msgraph.EventResult, error) {
	eventID := "mock-event-" + uuid.NewString()
	c.log.Info("mockcalendar: created event %s for %s at %s %s",
		eventID, req.AttendeeEmail, req.Date, req.StartTime)
	return &msgraph.EventResult{
		EventID:     eventID,
		MeetingLink: mockMeetingLink,
	}, nil
}

// UpdateEventTime фиксирует перенос в логе
func (c *Client) UpdateEventTime(_ context.Context, eventID, date string, startTime types.TimeString, _ int) error {
	c.log.Info("mockcalendar: moved event %s to %s %s", eventID, date, startTime)
	return nil
}

// DeleteEvent фиксирует удаление в логе
func (c *Client) DeleteEvent(_ context.Context, eventID string) error {
	c.log.Info("mockcalendar: deleted event %s", eventID)
	return nil
}
