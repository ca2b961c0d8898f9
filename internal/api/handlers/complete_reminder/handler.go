package complete_reminder

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/service/reminders"
)

const (
	msgInvalidReminderID = "некорректный ID напоминания"
	msgNotFound          = "напоминание не найдено"
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

// Handle PATCH /api/v1/reminders/{reminderId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reminderID := mux.Vars(r)["reminderId"]
	if reminderID == "" {
		h.logger.Warn("PATCH /reminders/{id}/complete - Missing reminder ID")
		handlers.RespondBadRequest(w, msgInvalidReminderID)
		return
	}

	err := h.service.Complete(r.Context(), reminderID)
	if err != nil {
		switch {
		case errors.Is(err, reminders.ErrReminderNotFound):
			h.logger.Warn("PATCH /reminders/{id}/complete - Reminder not found: reminder_id=%s", reminderID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /reminders/{id}/complete - Failed to complete reminder: reminder_id=%s, error=%v",
				reminderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reminders/{id}/complete - Reminder completed successfully: reminder_id=%s", reminderID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
