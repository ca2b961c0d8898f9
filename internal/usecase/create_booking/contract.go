package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
}

// ServiceTypeRepository интерфейс справочника типов услуг
type ServiceTypeRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ServiceType, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, b *domain.ServiceBooking) (*domain.ServiceBooking, error)
	GetByVehicleAndDay(ctx context.Context, vehicleID string, day time.Time) ([]*domain.ServiceBooking, error)
}

// ReminderRepository интерфейс репозитория напоминаний
type ReminderRepository interface {
	Create(ctx context.Context, rem *domain.ServiceReminder) (*domain.ServiceReminder, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
