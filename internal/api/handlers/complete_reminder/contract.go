package complete_reminder

import (
	"context"
)

type ReminderService interface {
	Complete(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
