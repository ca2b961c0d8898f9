package export_backup

import (
	"context"

	"github.com/m04kA/SMC-GarageService/internal/service/backup/models"
)

type BackupService interface {
	Export(ctx context.Context) (*models.Document, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
