package list_reminders

import (
	"net/http"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/pkg/ptr"
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

// Handle GET /api/v1/reminders?vehicleId=<id>
// Возвращает незавершённые напоминания, отсортированные по сроку.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var vehicleID *string
	if v := r.URL.Query().Get("vehicleId"); v != "" {
		vehicleID = ptr.Ptr(v)
	}

	result, err := h.service.ListIncomplete(r.Context(), vehicleID)
	if err != nil {
		h.logger.Error("GET /reminders - Failed to list reminders: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reminders - Reminders listed successfully: count=%d", len(result.Reminders))
	handlers.RespondJSON(w, http.StatusOK, result)
}
