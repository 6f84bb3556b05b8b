package update_calendar_config

import (
	"errors"
	"net/http"

	"github.com/tekom-dev/TKM-BookingService/internal/api/handlers"
	"github.com/tekom-dev/TKM-BookingService/internal/domain"
	policyService "github.com/tekom-dev/TKM-BookingService/internal/service/policy"
)

const (
	msgInvalidRequestBody = "Ungültiger Anfrageinhalt"
	msgInvalidConfig      = "Ungültige Kalenderkonfiguration"
	msgStorageUnavailable = "Die Konfiguration konnte nicht gespeichert werden, Speicher nicht erreichbar"
)

type Handler struct {
	service PolicyService
	logger  Logger
}

func NewHandler(service PolicyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/config
// Конфигурация заменяется целиком, частичных обновлений нет.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req domain.SchedulingPolicy
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	saved, err := h.service.Replace(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, policyService.ErrInvalidConfig):
			h.logger.Warn("PUT /admin/config - Invalid config: %v", err)
			handlers.RespondBadRequest(w, msgInvalidConfig)

		case errors.Is(err, policyService.ErrStorageUnavailable):
			h.logger.Error("PUT /admin/config - Storage unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStorageUnavailable)

		default:
			h.logger.Error("PUT /admin/config - Failed to save config: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, saved)
}
