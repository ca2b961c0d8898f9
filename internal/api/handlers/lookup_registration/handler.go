package lookup_registration

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/integrations/motapi"
	"github.com/m04kA/SMC-GarageService/internal/service/mot"
)

const (
	msgMissingRegistration = "не указан госномер"
	msgInvalidRegistration = "некорректный госномер"
	msgNotFound            = "автомобиль не найден в MOT History API"
	msgNoData              = "нет данных по этому автомобилю"
	msgRateLimited         = "превышен лимит запросов к MOT History API"
	msgServerError         = "MOT History API временно недоступен"
	msgNetworkError        = "не удалось связаться с MOT History API"
	msgAuthError           = "ошибка авторизации в MOT History API"
)

type Handler struct {
	service MOTService
	logger  Logger
}

func NewHandler(service MOTService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/mot/{registration}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	registration := mux.Vars(r)["registration"]
	if registration == "" {
		h.logger.Warn("GET /mot/{registration} - Missing registration")
		handlers.RespondBadRequest(w, msgMissingRegistration)
		return
	}

	result, err := h.service.Lookup(r.Context(), registration)
	if err != nil {
		status, message := classify(err)
		h.logger.Warn("GET /mot/{registration} - Lookup failed: registration=%s, error=%v",
			registration, err)
		handlers.RespondJSON(w, status, LookupErrorResponse{
			Error:       message,
			ManualEntry: mot.SuggestManualEntry(err),
			Retryable:   mot.Retryable(err),
		})
		return
	}

	h.logger.Info("GET /mot/{registration} - Lookup succeeded: registration=%s", registration)
	handlers.RespondJSON(w, http.StatusOK, LookupSuccessResponse{Vehicle: result})
}

// classify сопоставляет ошибку клиента со статус-кодом и сообщением
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, motapi.ErrInvalidRegistration):
		return http.StatusBadRequest, msgInvalidRegistration
	case errors.Is(err, motapi.ErrVehicleNotFound):
		return http.StatusNotFound, msgNotFound
	case errors.Is(err, motapi.ErrNoDataAvailable):
		return http.StatusNotFound, msgNoData
	case errors.Is(err, motapi.ErrRateLimited):
		return http.StatusTooManyRequests, msgRateLimited
	case errors.Is(err, motapi.ErrServer):
		return http.StatusBadGateway, msgServerError
	case errors.Is(err, motapi.ErrAuthentication):
		return http.StatusBadGateway, msgAuthError
	default:
		return http.StatusBadGateway, msgNetworkError
	}
}
