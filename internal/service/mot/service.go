package mot

import (
	"context"
	"errors"

	"github.com/m04kA/SMC-GarageService/internal/integrations/motapi"
	"github.com/m04kA/SMC-GarageService/internal/service/mot/models"
)

// Service сервис поиска данных автомобиля в MOT History API
type Service struct {
	client MOTClient
	logger Logger
}

// NewService создает новый экземпляр сервиса MOT поиска
func NewService(client MOTClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// Lookup ищет данные автомобиля по госномеру.
// Ошибки клиента (motapi sentinel errors) пробрасываются наружу
// без изменений - вызывающая сторона ветвится по их таксономии.
func (s *Service) Lookup(ctx context.Context, registration string) (*models.LookupResponse, error) {
	s.logger.Info("Lookup: registration=%s", registration)

	data, err := s.client.Lookup(ctx, registration)
	if err != nil {
		// Ожидаемые исходы (не найден, некорректный номер) - не ошибки сервиса
		if errors.Is(err, motapi.ErrVehicleNotFound) || errors.Is(err, motapi.ErrInvalidRegistration) {
			s.logger.Info("Lookup: no result for registration=%s: %v", registration, err)
		} else {
			s.logger.Error("Lookup: failed for registration=%s: %v", registration, err)
		}
		return nil, err
	}

	return models.FromVehicleData(data), nil
}

// SuggestManualEntry возвращает true для исходов, при которых UI
// предлагает ручной ввод данных (не найден / ошибка аутентификации)
func SuggestManualEntry(err error) bool {
	return errors.Is(err, motapi.ErrVehicleNotFound) ||
		errors.Is(err, motapi.ErrAuthentication) ||
		errors.Is(err, motapi.ErrNoDataAvailable)
}

// Retryable возвращает true для исходов, при которых уместен ручной
// повтор запроса (сетевые и серверные ошибки, превышение лимита)
func Retryable(err error) bool {
	return errors.Is(err, motapi.ErrNetwork) ||
		errors.Is(err, motapi.ErrServer) ||
		errors.Is(err, motapi.ErrRateLimited)
}
