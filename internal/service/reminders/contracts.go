package reminders

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// ReminderRepository интерфейс репозитория напоминаний
type ReminderRepository interface {
	Create(ctx context.Context, rem *domain.ServiceReminder) (*domain.ServiceReminder, error)
	ListIncomplete(ctx context.Context, vehicleID *string) ([]*domain.ServiceReminder, error)
	ExistsIncompleteByTitle(ctx context.Context, vehicleID, title string) (bool, error)
	MarkCompleted(ctx context.Context, id string, updatedAt time.Time) error
	DeleteCompleted(ctx context.Context) (int64, error)
}

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
