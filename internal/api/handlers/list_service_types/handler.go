package list_service_types

import (
	"net/http"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
)

type Handler struct {
	service ServiceTypeService
	logger  Logger
}

func NewHandler(service ServiceTypeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/service-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /service-types - Failed to list service types: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /service-types - Service types listed successfully: count=%d",
		len(result.ServiceTypes))
	handlers.RespondJSON(w, http.StatusOK, result)
}
