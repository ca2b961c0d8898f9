package backup

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error)
	List(ctx context.Context) ([]*domain.Vehicle, error)
	DeleteAll(ctx context.Context) error
}

// ServiceTypeRepository интерфейс справочника типов услуг
type ServiceTypeRepository interface {
	Create(ctx context.Context, st *domain.ServiceType) (*domain.ServiceType, error)
	List(ctx context.Context) ([]*domain.ServiceType, error)
	DeleteAll(ctx context.Context) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, b *domain.ServiceBooking) (*domain.ServiceBooking, error)
	List(ctx context.Context, vehicleID *string, status *domain.BookingStatus) ([]*domain.ServiceBooking, error)
	DeleteAll(ctx context.Context) error
}

// ReminderRepository интерфейс репозитория напоминаний
type ReminderRepository interface {
	Create(ctx context.Context, rem *domain.ServiceReminder) (*domain.ServiceReminder, error)
	List(ctx context.Context) ([]*domain.ServiceReminder, error)
	DeleteAll(ctx context.Context) error
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
