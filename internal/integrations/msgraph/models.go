package msgraph

import (
	"time"

	"github.com/tekom-dev/TKM-BookingService/pkg/types"
)

// Event нормализованное событие календаря
type Event struct {
	ID      string
	Subject string
	Start   time.Time
	End     time.Time
}

// CreateEventRequest параметры создания события с Teams-встречей
type CreateEventRequest struct {
	Date            string // YYYY-MM-DD, гражданская дата в бизнес-таймзоне
	StartTime       types.TimeString
	DurationMinutes int
	AttendeeName    string
	AttendeeEmail   string
}

// EventResult ссылки на созданное событие
type EventResult struct {
	EventID     string
	MeetingLink string
}

// ── wire-модели Graph API ──
// Явные типы на границе: поля сужаются при чтении, наличие не предполагается.

type graphDateTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

type graphEvent struct {
	ID            string         `json:"id"`
	Subject       string         `json:"subject"`
	Start         graphDateTime  `json:"start"`
	End           graphDateTime  `json:"end"`
	OnlineMeeting *onlineMeeting `json:"onlineMeeting,omitempty"`
}

type onlineMeeting struct {
	JoinURL string `json:"joinUrl"`
}

type eventListResponse struct {
	Value []graphEvent `json:"value"`
}

type graphEmailAddress struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

type graphAttendee struct {
	EmailAddress graphEmailAddress `json:"emailAddress"`
	Type         string            `json:"type"`
}

type graphItemBody struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

type createEventBody struct {
	Subject               string          `json:"subject"`
	Body                  graphItemBody   `json:"body"`
	Start                 graphDateTime   `json:"start"`
	End                   graphDateTime   `json:"end"`
	Attendees             []graphAttendee `json:"attendees"`
	IsOnlineMeeting       bool            `json:"isOnlineMeeting"`
	OnlineMeetingProvider string          `json:"onlineMeetingProvider"`
}

type updateEventBody struct {
	Start graphDateTime `json:"start"`
	End   graphDateTime `json:"end"`
}

type graphErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
