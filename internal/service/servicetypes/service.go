package servicetypes

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/internal/service/servicetypes/models"
)

// defaultCatalogue справочник услуг, загружаемый при первом запуске.
// Справочник неизменяемый: услуги создаются только через Seed.
var defaultCatalogue = []domain.ServiceType{
	{
		Name:            "Oil & Filter Change",
		Description:     "Engine oil and oil filter replacement.",
		DurationMinutes: 45,
		PriceMin:        40,
		PriceMax:        90,
		Icon:            "oil-can",
	},
	{
		Name:            "Interim Service",
		Description:     "Oil change plus essential safety checks.",
		DurationMinutes: 90,
		PriceMin:        90,
		PriceMax:        160,
		Icon:            "wrench",
	},
	{
		Name:            "Full Service",
		Description:     "Comprehensive inspection and scheduled maintenance.",
		DurationMinutes: 180,
		PriceMin:        150,
		PriceMax:        300,
		Icon:            "clipboard-check",
	},
	{
		Name:            "MOT Test",
		Description:     "Annual roadworthiness test.",
		DurationMinutes: 60,
		PriceMin:        35,
		PriceMax:        55,
		Icon:            "certificate",
	},
	{
		Name:            "Brake Inspection & Repair",
		Description:     "Pads, discs and hydraulic system check.",
		DurationMinutes: 120,
		PriceMin:        80,
		PriceMax:        250,
		Icon:            "disc-brake",
	},
	{
		Name:            "Tyre Fitting & Balancing",
		Description:     "Tyre replacement, balancing and pressure check.",
		DurationMinutes: 60,
		PriceMin:        50,
		PriceMax:        400,
		Icon:            "tire",
	},
	{
		Name:            "Air Conditioning Regas",
		Description:     "Refrigerant recharge and leak check.",
		DurationMinutes: 75,
		PriceMin:        60,
		PriceMax:        120,
		Icon:            "snowflake",
	},
	{
		Name:            "EV Battery Diagnostics",
		Description:     "High-voltage battery health and charging system diagnostics.",
		DurationMinutes: 90,
		PriceMin:        100,
		PriceMax:        220,
		Specialty:       true,
		Icon:            "battery-half",
	},
	{
		Name:            "Hybrid System Check",
		Description:     "Hybrid drivetrain and regenerative braking inspection.",
		DurationMinutes: 90,
		PriceMin:        90,
		PriceMax:        200,
		Specialty:       true,
		Icon:            "leaf",
	},
}

// Service сервис справочника типов услуг
type Service struct {
	repo         ServiceTypeRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса типов услуг
func NewService(repo ServiceTypeRepository, logger Logger) *Service {
	return &Service{
		repo:         repo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Seed наполняет справочник услуг при первом запуске.
// Если справочник уже не пуст, ничего не делает.
func (s *Service) Seed(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		s.logger.Error("Seed: failed to count service types: %v", err)
		return fmt.Errorf("%w: Seed - count service types: %v", ErrInternal, err)
	}
	if count > 0 {
		s.logger.Info("Seed: catalogue already has %d service types, skipping", count)
		return nil
	}

	now := s.timeProvider.Now()
	for _, entry := range defaultCatalogue {
		st := entry
		st.ID = uuid.NewString()
		st.CreatedAt = now

		if _, err := s.repo.Create(ctx, &st); err != nil {
			s.logger.Error("Seed: failed to create service type %q: %v", st.Name, err)
			return fmt.Errorf("%w: Seed - create service type: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Seed: seeded %d service types", len(defaultCatalogue))
	return nil
}

// List получает все типы услуг, отсортированные по названию
func (s *Service) List(ctx context.Context) (*models.ServiceTypeListResponse, error) {
	types, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainServiceTypeList(types), nil
}
