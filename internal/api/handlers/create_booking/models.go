package create_booking

import (
	"github.com/tekom-dev/TKM-BookingService/internal/domain"
	createBooking "github.com/tekom-dev/TKM-BookingService/internal/usecase/create_booking"
	"github.com/tekom-dev/TKM-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model. В multipart-варианте поля
// date/time/duration приходят отдельными полями формы, formData JSON-строкой.
type CreateBookingRequest struct {
	Date     string                  `json:"date"` // "2026-01-05"
	Time     string                  `json:"time"` // "15:00"
	Duration int                     `json:"duration"`
	FormData domain.CandidateProfile `json:"formData"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	BookingID   string `json:"bookingId"`
	EventID     string `json:"eventId"`
	MeetingLink string `json:"meetingLink"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(cv *createBooking.CVFile) (*createBooking.Request, error) {
	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Slot: domain.Slot{
			Date:            r.Date,
			StartTime:       startTime,
			DurationMinutes: r.Duration,
		},
		Candidate: r.FormData,
		CV:        cv,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		BookingID:   resp.BookingID,
		EventID:     resp.EventID,
		MeetingLink: resp.MeetingLink,
		Date:        resp.Date,
		Time:        resp.Time.String(),
	}
}
