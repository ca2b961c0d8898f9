package servicetypes

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// ServiceTypeRepository интерфейс репозитория типов услуг
type ServiceTypeRepository interface {
	Create(ctx context.Context, st *domain.ServiceType) (*domain.ServiceType, error)
	GetByID(ctx context.Context, id string) (*domain.ServiceType, error)
	List(ctx context.Context) ([]*domain.ServiceType, error)
	Count(ctx context.Context) (int, error)
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
