package update_vehicle

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/service/vehicles"
	"github.com/m04kA/SMC-GarageService/internal/service/vehicles/models"
)

const (
	msgInvalidVehicleID      = "некорректный ID автомобиля"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgValidationFailed      = "ошибка валидации данных автомобиля"
	msgNotFound              = "автомобиль не найден"
	msgDuplicateRegistration = "автомобиль с таким госномером уже зарегистрирован"
	msgInvalidInput          = "некорректные данные автомобиля"
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

// Handle PATCH /api/v1/vehicles/{vehicleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vehicleID := mux.Vars(r)["vehicleId"]
	if vehicleID == "" {
		h.logger.Warn("PATCH /vehicles/{id} - Missing vehicle ID")
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	var req models.UpdateVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /vehicles/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	vehicle, err := h.service.Update(r.Context(), vehicleID, &req)
	if err != nil {
		var validationErr *vehicles.ValidationError
		switch {
		case errors.Is(err, vehicles.ErrVehicleNotFound):
			h.logger.Warn("PATCH /vehicles/{id} - Vehicle not found: vehicle_id=%s", vehicleID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.As(err, &validationErr):
			h.logger.Warn("PATCH /vehicles/{id} - Validation failed: vehicle_id=%s, fields=%v",
				vehicleID, validationErr.Fields)
			handlers.RespondValidationError(w, msgValidationFailed, validationErr.Fields)

		case errors.Is(err, vehicles.ErrDuplicateRegistration):
			h.logger.Warn("PATCH /vehicles/{id} - Duplicate registration: vehicle_id=%s", vehicleID)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateRegistration)

		case errors.Is(err, vehicles.ErrInvalidInput):
			h.logger.Warn("PATCH /vehicles/{id} - Invalid input: vehicle_id=%s, error=%v", vehicleID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /vehicles/{id} - Failed to update vehicle: vehicle_id=%s, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /vehicles/{id} - Vehicle updated successfully: vehicle_id=%s", vehicleID)
	handlers.RespondJSON(w, http.StatusOK, vehicle)
}
