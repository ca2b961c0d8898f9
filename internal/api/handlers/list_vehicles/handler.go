package list_vehicles

import (
	"net/http"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
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

// Handle GET /api/v1/vehicles?q=<text>
// Без параметра q возвращает все автомобили, с параметром - результаты поиска
// по подстроке в марке, модели или госномере.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	var (
		result interface{}
		err    error
	)

	if query != "" {
		result, err = h.service.Search(r.Context(), query)
	} else {
		result, err = h.service.List(r.Context())
	}

	if err != nil {
		h.logger.Error("GET /vehicles - Failed to list vehicles: query=%q, error=%v", query, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /vehicles - Vehicles listed successfully: query=%q", query)
	handlers.RespondJSON(w, http.StatusOK, result)
}
