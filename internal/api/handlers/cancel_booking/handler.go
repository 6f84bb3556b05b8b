package cancel_booking

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tekom-dev/TKM-BookingService/internal/api/handlers"
	bookingsService "github.com/tekom-dev/TKM-BookingService/internal/service/bookings"
)

const (
	msgBookingNotFound  = "Buchung nicht gefunden"
	msgBookingNotActive = "Die Buchung ist bereits abgesagt oder abgeschlossen"
	msgCancelled        = "Termin wurde abgesagt"
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

// Handle POST /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	// Тело с причиной опционально
	var req CancelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /bookings/%s/cancel - Ignoring malformed body: %v", bookingID, err)
	}
	if req.Reason != "" {
		h.logger.Info("POST /bookings/%s/cancel - Reason: %s", bookingID, req.Reason)
	}

	if err := h.service.Cancel(r.Context(), bookingID); err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/%s/cancel - Not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingsService.ErrBookingNotActive):
			h.logger.Warn("POST /bookings/%s/cancel - Not active", bookingID)
			handlers.RespondConflict(w, msgBookingNotActive)

		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("POST /bookings/%s/cancel - Invalid input: %v", bookingID, err)
			handlers.RespondBadRequest(w, msgBookingNotFound)

		default:
			h.logger.Error("POST /bookings/%s/cancel - Failed: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, CancelResponse{
		Success: true,
		Message: msgCancelled,
	})
}
