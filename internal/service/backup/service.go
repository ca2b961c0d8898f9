package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/internal/service/backup/models"
)

// Service сервис экспорта и восстановления данных
type Service struct {
	vehicleRepo     VehicleRepository
	serviceTypeRepo ServiceTypeRepository
	bookingRepo     BookingRepository
	reminderRepo    ReminderRepository
	txManager       TxManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса backup
func NewService(
	vehicleRepo VehicleRepository,
	serviceTypeRepo ServiceTypeRepository,
	bookingRepo BookingRepository,
	reminderRepo ReminderRepository,
	txManager TxManager,
	logger Logger,
) *Service {
	return &Service{
		vehicleRepo:     vehicleRepo,
		serviceTypeRepo: serviceTypeRepo,
		bookingRepo:     bookingRepo,
		reminderRepo:    reminderRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Export выгружает все данные в единый JSON-документ
func (s *Service) Export(ctx context.Context) (*models.Document, error) {
	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		s.logger.Error("Export: failed to load vehicles: %v", err)
		return nil, fmt.Errorf("%w: Export - load vehicles: %v", ErrExportFailed, err)
	}

	serviceTypes, err := s.serviceTypeRepo.List(ctx)
	if err != nil {
		s.logger.Error("Export: failed to load service types: %v", err)
		return nil, fmt.Errorf("%w: Export - load service types: %v", ErrExportFailed, err)
	}

	bookings, err := s.bookingRepo.List(ctx, nil, nil)
	if err != nil {
		s.logger.Error("Export: failed to load bookings: %v", err)
		return nil, fmt.Errorf("%w: Export - load bookings: %v", ErrExportFailed, err)
	}

	reminders, err := s.reminderRepo.List(ctx)
	if err != nil {
		s.logger.Error("Export: failed to load reminders: %v", err)
		return nil, fmt.Errorf("%w: Export - load reminders: %v", ErrExportFailed, err)
	}

	doc := &models.Document{
		Version:      models.FormatVersion,
		CreatedAt:    s.timeProvider.Now(),
		Vehicles:     make([]models.VehicleDump, 0, len(vehicles)),
		ServiceTypes: make([]models.ServiceTypeDump, 0, len(serviceTypes)),
		Bookings:     make([]models.BookingDump, 0, len(bookings)),
		Reminders:    make([]models.ReminderDump, 0, len(reminders)),
	}

	for _, v := range vehicles {
		doc.Vehicles = append(doc.Vehicles, models.FromDomainVehicle(v))
	}
	for _, st := range serviceTypes {
		doc.ServiceTypes = append(doc.ServiceTypes, models.FromDomainServiceType(st))
	}
	for _, b := range bookings {
		doc.Bookings = append(doc.Bookings, models.FromDomainBooking(b))
	}
	for _, rem := range reminders {
		doc.Reminders = append(doc.Reminders, models.FromDomainReminder(rem))
	}

	s.logger.Info("Export: dumped %d vehicles, %d service types, %d bookings, %d reminders",
		len(doc.Vehicles), len(doc.ServiceTypes), len(doc.Bookings), len(doc.Reminders))

	return doc, nil
}

// Import восстанавливает данные из JSON-документа backup-файла.
// Текущие данные полностью заменяются содержимым файла в одной транзакции.
func (s *Service) Import(ctx context.Context, r io.Reader) (*models.ImportResult, error) {
	var doc models.Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		s.logger.Warn("Import: failed to decode backup: %v", err)
		return nil, fmt.Errorf("%w: Import - decode document: %v", ErrImportFailed, err)
	}

	if err := s.validateDocument(&doc); err != nil {
		s.logger.Warn("Import: invalid backup document: %v", err)
		return nil, err
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		// Порядок удаления и вставки учитывает FK-зависимости
		if err := s.bookingRepo.DeleteAll(ctx); err != nil {
			return fmt.Errorf("delete bookings: %w", err)
		}
		if err := s.reminderRepo.DeleteAll(ctx); err != nil {
			return fmt.Errorf("delete reminders: %w", err)
		}
		if err := s.vehicleRepo.DeleteAll(ctx); err != nil {
			return fmt.Errorf("delete vehicles: %w", err)
		}
		if err := s.serviceTypeRepo.DeleteAll(ctx); err != nil {
			return fmt.Errorf("delete service types: %w", err)
		}

		for i := range doc.Vehicles {
			if _, err := s.vehicleRepo.Create(ctx, doc.Vehicles[i].ToDomainVehicle()); err != nil {
				return fmt.Errorf("restore vehicle %s: %w", doc.Vehicles[i].ID, err)
			}
		}
		for i := range doc.ServiceTypes {
			if _, err := s.serviceTypeRepo.Create(ctx, doc.ServiceTypes[i].ToDomainServiceType()); err != nil {
				return fmt.Errorf("restore service type %s: %w", doc.ServiceTypes[i].ID, err)
			}
		}
		for i := range doc.Bookings {
			if _, err := s.bookingRepo.Create(ctx, doc.Bookings[i].ToDomainBooking()); err != nil {
				return fmt.Errorf("restore booking %s: %w", doc.Bookings[i].ID, err)
			}
		}
		for i := range doc.Reminders {
			if _, err := s.reminderRepo.Create(ctx, doc.Reminders[i].ToDomainReminder()); err != nil {
				return fmt.Errorf("restore reminder %s: %w", doc.Reminders[i].ID, err)
			}
		}

		return nil
	})
	if err != nil {
		s.logger.Error("Import: restore failed: %v", err)
		return nil, fmt.Errorf("%w: Import - %v", ErrRestoreFailed, err)
	}

	result := &models.ImportResult{
		Vehicles:     len(doc.Vehicles),
		ServiceTypes: len(doc.ServiceTypes),
		Bookings:     len(doc.Bookings),
		Reminders:    len(doc.Reminders),
	}

	s.logger.Info("Import: restored %d vehicles, %d service types, %d bookings, %d reminders",
		result.Vehicles, result.ServiceTypes, result.Bookings, result.Reminders)

	return result, nil
}

// validateDocument проверяет версию формата и целостность ссылок внутри документа
func (s *Service) validateDocument(doc *models.Document) error {
	if doc.Version != models.FormatVersion {
		return fmt.Errorf("%w: unsupported format version %q, expected %q",
			ErrInvalidBackup, doc.Version, models.FormatVersion)
	}

	vehicleIDs := make(map[string]struct{}, len(doc.Vehicles))
	for i := range doc.Vehicles {
		v := &doc.Vehicles[i]
		if v.ID == "" {
			return fmt.Errorf("%w: vehicle without id", ErrInvalidBackup)
		}
		if !domain.FuelType(v.FuelType).IsValid() {
			return fmt.Errorf("%w: vehicle %s has unknown fuel type %q", ErrInvalidBackup, v.ID, v.FuelType)
		}
		vehicleIDs[v.ID] = struct{}{}
	}

	for i := range doc.Bookings {
		b := &doc.Bookings[i]
		if _, ok := vehicleIDs[b.VehicleID]; !ok {
			return fmt.Errorf("%w: booking %s references unknown vehicle %s", ErrInvalidBackup, b.ID, b.VehicleID)
		}
		if !domain.BookingStatus(b.Status).IsValid() {
			return fmt.Errorf("%w: booking %s has unknown status %q", ErrInvalidBackup, b.ID, b.Status)
		}
	}

	for i := range doc.Reminders {
		rem := &doc.Reminders[i]
		if _, ok := vehicleIDs[rem.VehicleID]; !ok {
			return fmt.Errorf("%w: reminder %s references unknown vehicle %s", ErrInvalidBackup, rem.ID, rem.VehicleID)
		}
	}

	return nil
}
