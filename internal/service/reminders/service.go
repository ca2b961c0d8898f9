package reminders

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	reminderRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/reminder"
	vehicleRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-GarageService/internal/service/reminders/models"
)

// Service сервис для работы с напоминаниями об обслуживании
type Service struct {
	reminderRepo ReminderRepository
	vehicleRepo  VehicleRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса напоминаний
func NewService(
	reminderRepo ReminderRepository,
	vehicleRepo VehicleRepository,
	logger Logger,
) *Service {
	return &Service{
		reminderRepo: reminderRepo,
		vehicleRepo:  vehicleRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// ListIncomplete получает незавершённые напоминания по сроку (ASC),
// опционально - только для одного автомобиля
func (s *Service) ListIncomplete(ctx context.Context, vehicleID *string) (*models.ReminderListResponse, error) {
	reminders, err := s.reminderRepo.ListIncomplete(ctx, vehicleID)
	if err != nil {
		s.logger.Error("ListIncomplete: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListIncomplete - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainReminderList(reminders), nil
}

// Complete помечает напоминание выполненным
func (s *Service) Complete(ctx context.Context, id string) error {
	if err := s.reminderRepo.MarkCompleted(ctx, id, s.timeProvider.Now()); err != nil {
		if errors.Is(err, reminderRepo.ErrReminderNotFound) {
			s.logger.Warn("Complete: reminder id=%s not found", id)
			return ErrReminderNotFound
		}
		s.logger.Error("Complete: repository error for reminder id=%s: %v", id, err)
		return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Complete: reminder id=%s marked completed", id)
	return nil
}

// GenerateForVehicle строит smart-напоминания по состоянию автомобиля
// и сохраняет те, для которых еще нет незавершённого напоминания
// с таким же заголовком (дедупликация по title)
func (s *Service) GenerateForVehicle(ctx context.Context, vehicleID string) (*models.ReminderListResponse, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("GenerateForVehicle: vehicle id=%s not found", vehicleID)
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("GenerateForVehicle: repository error for vehicle id=%s: %v", vehicleID, err)
		return nil, fmt.Errorf("%w: GenerateForVehicle - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	generated := GenerateSmartReminders(vehicle, now)
	created := make([]*models.ReminderResponse, 0, len(generated))

	for _, rem := range generated {
		exists, err := s.reminderRepo.ExistsIncompleteByTitle(ctx, vehicleID, rem.Title)
		if err != nil {
			s.logger.Error("GenerateForVehicle: dedup check failed for vehicle id=%s: %v", vehicleID, err)
			return nil, fmt.Errorf("%w: GenerateForVehicle - dedup check: %v", ErrInternal, err)
		}
		if exists {
			s.logger.Info("GenerateForVehicle: skipping duplicate reminder %q for vehicle id=%s", rem.Title, vehicleID)
			continue
		}

		rem.ID = uuid.NewString()
		rem.CreatedAt = now
		rem.UpdatedAt = now

		saved, err := s.reminderRepo.Create(ctx, rem)
		if err != nil {
			s.logger.Error("GenerateForVehicle: failed to create reminder for vehicle id=%s: %v", vehicleID, err)
			return nil, fmt.Errorf("%w: GenerateForVehicle - create reminder: %v", ErrInternal, err)
		}
		created = append(created, models.FromDomainReminder(saved))
	}

	s.logger.Info("GenerateForVehicle: created %d reminders for vehicle id=%s", len(created), vehicleID)

	resp := &models.ReminderListResponse{Reminders: make([]models.ReminderResponse, 0, len(created))}
	for _, c := range created {
		resp.Reminders = append(resp.Reminders, *c)
	}
	return resp, nil
}

// CleanupCompleted удаляет все выполненные напоминания (ручная очистка данных)
func (s *Service) CleanupCompleted(ctx context.Context) (*models.CleanupResponse, error) {
	deleted, err := s.reminderRepo.DeleteCompleted(ctx)
	if err != nil {
		s.logger.Error("CleanupCompleted: repository error: %v", err)
		return nil, fmt.Errorf("%w: CleanupCompleted - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CleanupCompleted: deleted %d completed reminders", deleted)
	return &models.CleanupResponse{Deleted: deleted}, nil
}
