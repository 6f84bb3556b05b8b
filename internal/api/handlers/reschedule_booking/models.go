package reschedule_booking

import (
	"github.com/tekom-dev/TKM-BookingService/internal/domain"
	"github.com/tekom-dev/TKM-BookingService/pkg/types"
)

// RescheduleRequest HTTP request model
type RescheduleRequest struct {
	Date     string `json:"date"` // "2026-01-05"
	Time     string `json:"time"` // "15:00"
	Duration int    `json:"duration,omitempty"`
}

// RescheduleResponse HTTP response model
type RescheduleResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	MeetingLink string `json:"meetingLink,omitempty"`
}

// ToSlot конвертирует HTTP запрос в доменный слот
func (r *RescheduleRequest) ToSlot() (domain.Slot, error) {
	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return domain.Slot{}, err
	}

	return domain.Slot{
		Date:            r.Date,
		StartTime:       startTime,
		DurationMinutes: r.Duration,
	}, nil
}
