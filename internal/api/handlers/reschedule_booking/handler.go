package reschedule_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tekom-dev/TKM-BookingService/internal/api/handlers"
	bookingsService "github.com/tekom-dev/TKM-BookingService/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "Ungültiger Anfrageinhalt"
	msgInvalidSlot        = "Ungültiger Termin, erwartet werden date (YYYY-MM-DD) und time (HH:MM)"
	msgBookingNotFound    = "Buchung nicht gefunden"
	msgBookingNotActive   = "Die Buchung ist bereits abgesagt oder abgeschlossen"
	msgRescheduled        = "Termin wurde verschoben"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	var req RescheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/%s/reschedule - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	slot, err := req.ToSlot()
	if err != nil {
		h.logger.Warn("POST /bookings/%s/reschedule - Invalid slot: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidSlot)
		return
	}

	booking, err := h.service.Reschedule(r.Context(), bookingID, slot)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/%s/reschedule - Not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingsService.ErrBookingNotActive):
			h.logger.Warn("POST /bookings/%s/reschedule - Not active", bookingID)
			handlers.RespondConflict(w, msgBookingNotActive)

		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("POST /bookings/%s/reschedule - Invalid input: %v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		default:
			h.logger.Error("POST /bookings/%s/reschedule - Failed: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, RescheduleResponse{
		Success:     true,
		Message:     msgRescheduled,
		Date:        slot.Date,
		Time:        slot.StartTime.String(),
		MeetingLink: booking.MeetingLink,
	})
}
