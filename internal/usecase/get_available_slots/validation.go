package get_available_slots

import (
	"fmt"

	"github.com/tekom-dev/TKM-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StartDate == "" {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.EndDate == "" {
		return fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}

	if req.EndDate < req.StartDate {
		return fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
	}

	if req.DurationMinutes != 0 &&
		(req.DurationMinutes < domain.MinSlotDurationMinutes || req.DurationMinutes > domain.MaxSlotDurationMinutes) {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	return nil
}
