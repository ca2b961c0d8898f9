package delete_vehicle

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/service/vehicles"
)

const (
	msgInvalidVehicleID  = "некорректный ID автомобиля"
	msgNotFound          = "автомобиль не найден"
	msgHasActiveBookings = "нельзя удалить автомобиль с активными бронированиями"
)

type Handler struct {
	service VehicleService
	logger  Logger
}

func NewHandler(service VehicleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/vehicles/{vehicleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vehicleID := mux.Vars(r)["vehicleId"]
	if vehicleID == "" {
		h.logger.Warn("DELETE /vehicles/{id} - Missing vehicle ID")
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	err := h.service.Delete(r.Context(), vehicleID)
	if err != nil {
		switch {
		case errors.Is(err, vehicles.ErrVehicleNotFound):
			h.logger.Warn("DELETE /vehicles/{id} - Vehicle not found: vehicle_id=%s", vehicleID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, vehicles.ErrHasActiveBookings):
			h.logger.Warn("DELETE /vehicles/{id} - Vehicle has active bookings: vehicle_id=%s", vehicleID)
			handlers.RespondError(w, http.StatusConflict, msgHasActiveBookings)

		default:
			h.logger.Error("DELETE /vehicles/{id} - Failed to delete vehicle: vehicle_id=%s, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /vehicles/{id} - Vehicle deleted successfully: vehicle_id=%s", vehicleID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
