package vehicles

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	vehicleRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-GarageService/internal/service/vehicles/models"
	"github.com/m04kA/SMC-GarageService/internal/validation"
)

// Service сервис для работы с автомобилями
type Service struct {
	vehicleRepo  VehicleRepository
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса автомобилей
func NewService(
	vehicleRepo VehicleRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *Service {
	return &Service{
		vehicleRepo:  vehicleRepo,
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create регистрирует новый автомобиль.
// Валидирует все поля и проверяет уникальность госномера (без учета регистра).
func (s *Service) Create(ctx context.Context, req *models.CreateVehicleRequest) (*models.VehicleResponse, error) {
	now := s.timeProvider.Now()

	v := validation.New()
	v.ValidateRequired(req.Make, "make", "Make")
	v.ValidateRequired(req.Model, "model", "Model")
	v.ValidateRequired(req.Color, "color", "Color")
	v.ValidateRegistration(req.Registration, "registration")
	v.ValidateYear(req.Year, "year", now)
	v.ValidateMileage(strconv.Itoa(req.Mileage), "mileage")

	if !domain.FuelType(req.FuelType).IsValid() {
		s.logger.Warn("Create: invalid fuel type %q", req.FuelType)
		return nil, fmt.Errorf("%w: invalid fuel type %q", ErrInvalidInput, req.FuelType)
	}

	if !v.IsValid() {
		s.logger.Warn("Create: validation failed: %v", v.Errors())
		return nil, &ValidationError{Fields: v.Errors()}
	}

	registration := domain.NormalizeRegistration(req.Registration)

	// Проверяем уникальность госномера
	if err := s.checkRegistrationUnique(ctx, registration, ""); err != nil {
		return nil, err
	}

	vehicle := &domain.Vehicle{
		ID:              uuid.NewString(),
		Make:            strings.TrimSpace(req.Make),
		Model:           strings.TrimSpace(req.Model),
		Year:            req.Year,
		Registration:    registration,
		Mileage:         req.Mileage,
		FuelType:        domain.FuelType(req.FuelType),
		Color:           strings.TrimSpace(req.Color),
		LastServiceDate: req.LastServiceDate,
		NextServiceDue:  req.NextServiceDue,
		MOTDueDate:      req.MOTDueDate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.vehicleRepo.Create(ctx, vehicle)
	if err != nil {
		s.logger.Error("Create: repository error for registration=%s: %v", registration, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: vehicle created id=%s, registration=%s", created.ID, created.Registration)
	return models.FromDomainVehicle(created, now), nil
}

// Update частично обновляет автомобиль: валидируются и применяются
// только заполненные поля. Проверка уникальности госномера исключает
// сам обновляемый автомобиль.
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateVehicleRequest) (*models.VehicleResponse, error) {
	now := s.timeProvider.Now()

	vehicle, err := s.getVehicle(ctx, id, "Update")
	if err != nil {
		return nil, err
	}

	v := validation.New()
	if req.Make != nil {
		v.ValidateRequired(*req.Make, "make", "Make")
	}
	if req.Model != nil {
		v.ValidateRequired(*req.Model, "model", "Model")
	}
	if req.Color != nil {
		v.ValidateRequired(*req.Color, "color", "Color")
	}
	if req.Registration != nil {
		v.ValidateRegistration(*req.Registration, "registration")
	}
	if req.Year != nil {
		v.ValidateYear(*req.Year, "year", now)
	}
	if req.Mileage != nil {
		v.ValidateMileage(strconv.Itoa(*req.Mileage), "mileage")
	}
	if req.FuelType != nil && !domain.FuelType(*req.FuelType).IsValid() {
		s.logger.Warn("Update: invalid fuel type %q for id=%s", *req.FuelType, id)
		return nil, fmt.Errorf("%w: invalid fuel type %q", ErrInvalidInput, *req.FuelType)
	}

	if !v.IsValid() {
		s.logger.Warn("Update: validation failed for id=%s: %v", id, v.Errors())
		return nil, &ValidationError{Fields: v.Errors()}
	}

	if req.Registration != nil {
		registration := domain.NormalizeRegistration(*req.Registration)
		if err := s.checkRegistrationUnique(ctx, registration, vehicle.ID); err != nil {
			return nil, err
		}
		vehicle.Registration = registration
	}

	if req.Make != nil {
		vehicle.Make = strings.TrimSpace(*req.Make)
	}
	if req.Model != nil {
		vehicle.Model = strings.TrimSpace(*req.Model)
	}
	if req.Year != nil {
		vehicle.Year = *req.Year
	}
	if req.Mileage != nil {
		vehicle.Mileage = *req.Mileage
	}
	if req.FuelType != nil {
		vehicle.FuelType = domain.FuelType(*req.FuelType)
	}
	if req.Color != nil {
		vehicle.Color = strings.TrimSpace(*req.Color)
	}
	if req.LastServiceDate != nil {
		vehicle.LastServiceDate = req.LastServiceDate
	}
	if req.NextServiceDue != nil {
		vehicle.NextServiceDue = req.NextServiceDue
	}
	if req.MOTDueDate != nil {
		vehicle.MOTDueDate = req.MOTDueDate
	}
	vehicle.UpdatedAt = now

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("Update: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: vehicle updated id=%s", id)
	return models.FromDomainVehicle(vehicle, now), nil
}

// Delete удаляет автомобиль вместе с его бронированиями и напоминаниями.
// Удаление заблокировано, пока есть бронирования в нетерминальных статусах.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.getVehicle(ctx, id, "Delete"); err != nil {
		return err
	}

	activeCount, err := s.bookingRepo.CountActiveByVehicle(ctx, id)
	if err != nil {
		s.logger.Error("Delete: failed to count active bookings for id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - count active bookings: %v", ErrInternal, err)
	}
	if activeCount > 0 {
		s.logger.Warn("Delete: vehicle id=%s has %d active bookings", id, activeCount)
		return fmt.Errorf("%w: %d active bookings", ErrHasActiveBookings, activeCount)
	}

	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			return ErrVehicleNotFound
		}
		s.logger.Error("Delete: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: vehicle deleted id=%s", id)
	return nil
}

// GetByID получает автомобиль по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.VehicleResponse, error) {
	vehicle, err := s.getVehicle(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}
	return models.FromDomainVehicle(vehicle, s.timeProvider.Now()), nil
}

// List получает все автомобили, отсортированные по последнему обновлению
func (s *Service) List(ctx context.Context) (*models.VehicleListResponse, error) {
	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainVehicleList(vehicles, s.timeProvider.Now()), nil
}

// Search ищет автомобили по подстроке в марке, модели или госномере.
// Пустой запрос возвращает полный список.
func (s *Service) Search(ctx context.Context, text string) (*models.VehicleListResponse, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return s.List(ctx)
	}

	vehicles, err := s.vehicleRepo.Search(ctx, text)
	if err != nil {
		s.logger.Error("Search: repository error for query=%q: %v", text, err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Search: query=%q matched %d vehicles", text, len(vehicles))
	return models.FromDomainVehicleList(vehicles, s.timeProvider.Now()), nil
}

// Вспомогательные методы

func (s *Service) getVehicle(ctx context.Context, id, method string) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("%s: vehicle id=%s not found", method, id)
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("%s: repository error for id=%s: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return vehicle, nil
}

// checkRegistrationUnique проверяет, что госномер не занят другим автомобилем.
// excludeID исключает сам обновляемый автомобиль из проверки.
func (s *Service) checkRegistrationUnique(ctx context.Context, registration, excludeID string) error {
	existing, err := s.vehicleRepo.GetByRegistration(ctx, registration)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			return nil
		}
		s.logger.Error("checkRegistrationUnique: repository error for registration=%s: %v", registration, err)
		return fmt.Errorf("%w: checkRegistrationUnique - repository error: %v", ErrInternal, err)
	}

	if existing.ID != excludeID {
		s.logger.Warn("checkRegistrationUnique: registration=%s already taken by id=%s", registration, existing.ID)
		return ErrDuplicateRegistration
	}
	return nil
}
