package send_reminders

import (
	"net/http"

	"github.com/tekom-dev/TKM-BookingService/internal/api/handlers"
)

const msgRecordStoreFailed = "Buchungen konnten nicht geladen werden"

type Handler struct {
	useCase SendRemindersUseCase
	logger  Logger
}

func NewHandler(useCase SendRemindersUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/cron/reminders
// Ошибки отдельных писем не валят запрос, они в теле ответа.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /cron/reminders - Failed: %v", err)
		handlers.RespondBadGateway(w, msgRecordStoreFailed)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
