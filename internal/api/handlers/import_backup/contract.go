package import_backup

import (
	"context"
	"io"

	"github.com/m04kA/SMC-GarageService/internal/service/backup/models"
)

type BackupService interface {
	Import(ctx context.Context, r io.Reader) (*models.ImportResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
