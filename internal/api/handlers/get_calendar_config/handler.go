package get_calendar_config

import (
	"net/http"

	"github.com/tekom-dev/TKM-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/admin/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	policy, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/config - Failed to get config: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, policy)
}
