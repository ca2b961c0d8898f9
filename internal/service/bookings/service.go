package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-GarageService/internal/service/bookings/models"
)

// Service сервис для работы с жизненным циклом бронирований
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	booking, err := s.getBooking(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}
	return models.FromDomainBooking(booking), nil
}

// List получает бронирования, отсортированные по дате записи.
// Опционально фильтрует по автомобилю и/или статусу.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	var status *domain.BookingStatus
	if req.Status != nil {
		converted, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		status = &converted
	}

	bookings, err := s.bookingRepo.List(ctx, req.VehicleID, status)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus переводит бронирование в новый статус.
// Допустимы только переходы из таблицы domain.AllowedTransitions:
// scheduled -> confirmed/cancelled, confirmed -> in_progress/cancelled,
// in_progress -> completed/cancelled. Переход в completed требует
// неотрицательной фактической стоимости; дата завершения по умолчанию - сейчас.
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%s", req.Status, id)
		return nil, ErrInvalidStatus
	}

	booking, err := s.getBooking(ctx, id, "UpdateStatus")
	if err != nil {
		return nil, err
	}

	if !domain.CanTransition(booking.Status, newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for booking id=%s",
			booking.Status, newStatus, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
	}

	var actualCost *float64
	var completedDate *time.Time
	now := s.timeProvider.Now()

	if newStatus == domain.StatusCompleted {
		if req.ActualCost == nil || *req.ActualCost < 0 {
			s.logger.Warn("UpdateStatus: completed transition without actual cost for booking id=%s", id)
			return nil, ErrActualCostRequired
		}
		actualCost = req.ActualCost

		completedDate = req.CompletedDate
		if completedDate == nil {
			completedDate = &now
		}
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, newStatus, actualCost, completedDate, now); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	booking.Status = newStatus
	booking.UpdatedAt = now
	if actualCost != nil {
		booking.ActualCost = actualCost
	}
	if completedDate != nil {
		booking.CompletedDate = completedDate
	}

	s.logger.Info("UpdateStatus: booking id=%s moved to status=%s", id, newStatus)
	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет бронирование (переход в cancelled из любого нетерминального статуса)
func (s *Service) Cancel(ctx context.Context, id string) (*models.BookingResponse, error) {
	return s.UpdateStatus(ctx, id, &models.UpdateStatusRequest{Status: string(domain.StatusCancelled)})
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, id, method string) (*domain.ServiceBooking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", method, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return booking, nil
}
