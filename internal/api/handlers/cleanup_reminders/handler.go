package cleanup_reminders

import (
	"net/http"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
)

type Handler struct {
	service ReminderService
	logger  Logger
}

func NewHandler(service ReminderService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/reminders/completed
// Удаляет все выполненные напоминания.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.CleanupCompleted(r.Context())
	if err != nil {
		h.logger.Error("DELETE /reminders/completed - Failed to cleanup reminders: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /reminders/completed - Deleted %d completed reminder(s)", result.Deleted)
	handlers.RespondJSON(w, http.StatusOK, result)
}
