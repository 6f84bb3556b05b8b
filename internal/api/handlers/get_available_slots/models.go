package get_available_slots

import (
	"github.com/tekom-dev/TKM-BookingService/internal/domain"
	getSlots "github.com/tekom-dev/TKM-BookingService/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Slots []domain.TimeSlotDay `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlots.Response) *SlotsResponse {
	return &SlotsResponse{Slots: resp.Slots}
}
