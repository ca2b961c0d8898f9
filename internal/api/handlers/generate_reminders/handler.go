package generate_reminders

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/service/reminders"
)

const (
	msgInvalidVehicleID = "некорректный ID автомобиля"
	msgVehicleNotFound  = "автомобиль не найден"
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

// Handle POST /api/v1/vehicles/{vehicleId}/reminders/generate
// Генерирует умные напоминания по текущему состоянию автомобиля.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vehicleID := mux.Vars(r)["vehicleId"]
	if vehicleID == "" {
		h.logger.Warn("POST /vehicles/{id}/reminders/generate - Missing vehicle ID")
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	result, err := h.service.GenerateForVehicle(r.Context(), vehicleID)
	if err != nil {
		switch {
		case errors.Is(err, reminders.ErrVehicleNotFound):
			h.logger.Warn("POST /vehicles/{id}/reminders/generate - Vehicle not found: vehicle_id=%s", vehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		default:
			h.logger.Error("POST /vehicles/{id}/reminders/generate - Failed to generate reminders: vehicle_id=%s, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vehicles/{id}/reminders/generate - Generated %d reminder(s): vehicle_id=%s",
		len(result.Reminders), vehicleID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
