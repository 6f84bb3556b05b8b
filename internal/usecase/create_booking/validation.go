package create_booking

import (
	"fmt"
	"net/mail"

	"github.com/tekom-dev/TKM-BookingService/internal/domain"
	"github.com/tekom-dev/TKM-BookingService/pkg/civiltime"
	"github.com/tekom-dev/TKM-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, conv *civiltime.Converter) error {
	if _, err := conv.ParseDate(req.Slot.Date); err != nil {
		return fmt.Errorf("%w: invalid date: %v", ErrInvalidInput, err)
	}

	if _, err := types.NewTimeStringFromString(req.Slot.StartTime.String()); err != nil {
		return fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
	}

	if req.Slot.DurationMinutes < domain.MinSlotDurationMinutes ||
		req.Slot.DurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	if req.Candidate.FirstName == "" || req.Candidate.LastName == "" {
		return fmt.Errorf("%w: first and last name are required", ErrInvalidInput)
	}

	if _, err := mail.ParseAddress(req.Candidate.Email); err != nil {
		return fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}

	if req.Candidate.Position == "" {
		return fmt.Errorf("%w: position is required", ErrInvalidInput)
	}

	if req.CV != nil && len(req.CV.Content) == 0 {
		return fmt.Errorf("%w: cv file is empty", ErrInvalidInput)
	}

	return nil
}
