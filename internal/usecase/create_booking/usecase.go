package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/booking"
	serviceTypeRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/servicetype"
	vehicleRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-GarageService/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	vehicleRepo     VehicleRepository
	serviceTypeRepo ServiceTypeRepository
	bookingRepo     BookingRepository
	reminderRepo    ReminderRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	vehicleRepo VehicleRepository,
	serviceTypeRepo ServiceTypeRepository,
	bookingRepo BookingRepository,
	reminderRepo ReminderRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		vehicleRepo:     vehicleRepo,
		serviceTypeRepo: serviceTypeRepo,
		bookingRepo:     bookingRepo,
		reminderRepo:    reminderRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Использует сериализуемую транзакцию для предотвращения гонки данных
// при проверке конфликта по календарному дню.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: vehicle=%s, serviceType=%s, date=%s",
		req.VehicleID, req.ServiceTypeID, req.ScheduledDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Дата бронирования не может быть в прошлом
	if req.ScheduledDate.Before(now) {
		uc.logger.Warn("CreateBooking: scheduled date %s is in the past",
			req.ScheduledDate.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}

	// 3. Проверяем существование автомобиля
	vehicle, err := uc.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			uc.logger.Warn("CreateBooking: vehicle id=%s not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("CreateBooking: failed to get vehicle id=%s: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	// 4. Проверяем существование типа услуги
	serviceType, err := uc.serviceTypeRepo.GetByID(ctx, req.ServiceTypeID)
	if err != nil {
		if errors.Is(err, serviceTypeRepo.ErrServiceTypeNotFound) {
			uc.logger.Warn("CreateBooking: service type id=%s not found", req.ServiceTypeID)
			return nil, ErrServiceTypeNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service type id=%s: %v", req.ServiceTypeID, err)
		return nil, fmt.Errorf("%w: failed to get service type: %v", ErrInternal, err)
	}

	// 5. Расчет стоимости не зависит от состояния БД, выполняем до транзакции
	estimatedCost := EstimateCost(serviceType, vehicle, now)

	var (
		result     *domain.ServiceBooking
		reminderID *string
	)

	// 6. Проверка конфликта и вставка выполняются в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Любое бронирование этого автомобиля в тот же календарный день -
		// конфликт, независимо от статуса и времени
		sameDay, err := uc.bookingRepo.GetByVehicleAndDay(txCtx, req.VehicleID, req.ScheduledDate)
		if err != nil && !errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Error("CreateBooking: failed to check same-day bookings: %v", err)
			return fmt.Errorf("%w: failed to check same-day bookings: %v", ErrInternal, err)
		}

		if len(sameDay) > 0 {
			uc.logger.Warn("CreateBooking: vehicle id=%s already has %d booking(s) on %s",
				req.VehicleID, len(sameDay), req.ScheduledDate.Format(domain.DateFormat))
			return ErrSameDayConflict
		}

		// 6.2. Создаем бронирование
		booking := &domain.ServiceBooking{
			ID:            uuid.NewString(),
			VehicleID:     req.VehicleID,
			ServiceTypeID: ptr.Ptr(req.ServiceTypeID),
			ScheduledDate: req.ScheduledDate,
			Status:        domain.StatusScheduled,
			EstimatedCost: estimatedCost,
			Notes:         req.Notes,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		result, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 6.3. Для бронирований дальше недели вперед создаем напоминание
		// за два дня до визита
		if req.ScheduledDate.After(now.AddDate(0, 0, domain.BookingReminderThresholdDays)) {
			reminder := &domain.ServiceReminder{
				ID:        uuid.NewString(),
				VehicleID: req.VehicleID,
				Title:     fmt.Sprintf("Upcoming: %s", serviceType.Name),
				Description: fmt.Sprintf("%s booked for %s",
					serviceType.Name, req.ScheduledDate.Format(domain.DateFormat)),
				DueDate:   req.ScheduledDate.AddDate(0, 0, -domain.BookingReminderLeadDays),
				Type:      domain.ReminderService,
				Completed: false,
				Urgent:    false,
				CreatedAt: now,
				UpdatedAt: now,
			}

			created, err := uc.reminderRepo.Create(txCtx, reminder)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to create reminder: %v", err)
				return fmt.Errorf("%w: failed to create reminder: %v", ErrInternal, err)
			}

			reminderID = ptr.Ptr(created.ID)
			uc.logger.Info("CreateBooking: created reminder id=%s due %s",
				created.ID, created.DueDate.Format(domain.DateFormat))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%s, estimated cost %.2f",
		result.ID, result.EstimatedCost)

	return &Response{
		ID:            result.ID,
		VehicleID:     result.VehicleID,
		ServiceTypeID: result.ServiceTypeID,
		ScheduledDate: result.ScheduledDate,
		Status:        string(result.Status),
		EstimatedCost: result.EstimatedCost,
		Notes:         result.Notes,
		ReminderID:    reminderID,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}
