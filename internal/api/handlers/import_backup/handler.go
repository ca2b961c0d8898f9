package import_backup

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GarageService/internal/api/handlers"
	"github.com/m04kA/SMC-GarageService/internal/service/backup"
)

const (
	msgInvalidBackup = "некорректный backup-файл"
	msgRestoreFailed = "не удалось восстановить данные из backup-файла"
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

// Handle POST /api/v1/backup/import
// Тело запроса - backup-файл формата "1.0". Текущие данные заменяются полностью.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	result, err := h.service.Import(r.Context(), r.Body)
	if err != nil {
		switch {
		case errors.Is(err, backup.ErrImportFailed), errors.Is(err, backup.ErrInvalidBackup):
			h.logger.Warn("POST /backup/import - Invalid backup: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBackup)

		case errors.Is(err, backup.ErrRestoreFailed):
			h.logger.Error("POST /backup/import - Restore failed: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgRestoreFailed)

		default:
			h.logger.Error("POST /backup/import - Failed to import backup: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /backup/import - Backup imported: %d vehicles, %d service types, %d bookings, %d reminders",
		result.Vehicles, result.ServiceTypes, result.Bookings, result.Reminders)
	handlers.RespondJSON(w, http.StatusOK, result)
}
