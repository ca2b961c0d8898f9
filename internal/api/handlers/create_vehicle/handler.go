package create_vehicle

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/service/vehicles"
	"github.com/m04kA/SMC-GarageService/internal/service/vehicles/models"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgValidationFailed      = "ошибка валидации данных автомобиля"
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

// Handle POST /api/v1/vehicles
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vehicles - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	vehicle, err := h.service.Create(r.Context(), &req)
	if err != nil {
		var validationErr *vehicles.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /vehicles - Validation failed: %v", validationErr.Fields)
			handlers.RespondValidationError(w, msgValidationFailed, validationErr.Fields)

		case errors.Is(err, vehicles.ErrDuplicateRegistration):
			h.logger.Warn("POST /vehicles - Duplicate registration: %s", req.Registration)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateRegistration)

		case errors.Is(err, vehicles.ErrInvalidInput):
			h.logger.Warn("POST /vehicles - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /vehicles - Failed to create vehicle: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vehicles - Vehicle created successfully: vehicle_id=%s, registration=%s",
		vehicle.ID, vehicle.Registration)
	handlers.RespondJSON(w, http.StatusCreated, vehicle)
}
