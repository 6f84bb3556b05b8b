package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/tekom-dev/TKM-BookingService/internal/api/handlers"
	getSlots "github.com/tekom-dev/TKM-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidRange        = "Ungültiger Zeitraum, erwartet werden startDate und endDate im Format YYYY-MM-DD"
	msgInvalidDuration     = "Ungültige Termindauer"
	msgCalendarUnavailable = "Der Kalender ist momentan nicht erreichbar, bitte versuchen Sie es später erneut"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?startDate=YYYY-MM-DD&endDate=YYYY-MM-DD&duration=30
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	duration := 0
	if raw := query.Get("duration"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid duration %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
		duration = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getSlots.Request{
		StartDate:       query.Get("startDate"),
		EndDate:         query.Get("endDate"),
		DurationMinutes: duration,
	})
	if err != nil {
		switch {
		case errors.Is(err, getSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getSlots.ErrCalendarUnavailable):
			h.logger.Error("GET /availability - Calendar unavailable: %v", err)
			handlers.RespondBadGateway(w, msgCalendarUnavailable)

		default:
			h.logger.Error("GET /availability - Failed to compute slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
