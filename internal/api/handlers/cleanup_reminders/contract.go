package cleanup_reminders

import (
	"context"

	"github.com/m04kA/SMC-GarageService/internal/service/reminders/models"
)

type ReminderService interface {
	CleanupCompleted(ctx context.Context) (*models.CleanupResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
