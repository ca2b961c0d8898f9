package export_backup

import (
	"net/http"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
)

type Handler struct {
	service BackupService
	logger  Logger
}

func NewHandler(service BackupService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/backup/export
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doc, err := h.service.Export(r.Context())
	if err != nil {
		h.logger.Error("GET /backup/export - Failed to export data: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="garage-backup.json"`)

	h.logger.Info("GET /backup/export - Backup exported: %d vehicles, %d bookings",
		len(doc.Vehicles), len(doc.Bookings))
	handlers.RespondJSON(w, http.StatusOK, doc)
}
