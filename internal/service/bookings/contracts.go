package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ServiceBooking, error)
	List(ctx context.Context, vehicleID *string, status *domain.BookingStatus) ([]*domain.ServiceBooking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, actualCost *float64, completedDate *time.Time, updatedAt time.Time) error
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
