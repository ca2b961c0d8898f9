package models

import (
	"time"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// FormatVersion поддерживаемая версия формата backup-файла
const FormatVersion = "1.0"

// Document корневая структура backup-файла.
// Все даты сериализуются в ISO-8601 (RFC 3339), связи между сущностями — по id.
type Document struct {
	Version      string            `json:"version"`
	CreatedAt    time.Time         `json:"createdAt"`
	Vehicles     []VehicleDump     `json:"vehicles"`
	ServiceTypes []ServiceTypeDump `json:"serviceTypes"`
	Bookings     []BookingDump     `json:"bookings"`
	Reminders    []ReminderDump    `json:"reminders"`
}

// VehicleDump полный снимок автомобиля для экспорта
type VehicleDump struct {
	ID              string     `json:"id"`
	Make            string     `json:"make"`
	Model           string     `json:"model"`
	Year            int        `json:"year"`
	Registration    string     `json:"registration"`
	Mileage         int        `json:"mileage"`
	FuelType        string     `json:"fuelType"`
	Color           string     `json:"color"`
	LastServiceDate *time.Time `json:"lastServiceDate,omitempty"`
	NextServiceDue  *time.Time `json:"nextServiceDue,omitempty"`
	MOTDueDate      *time.Time `json:"motDueDate,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// ServiceTypeDump полный снимок типа услуги для экспорта
type ServiceTypeDump struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"durationMinutes"`
	PriceMin        float64   `json:"priceMin"`
	PriceMax        float64   `json:"priceMax"`
	Specialty       bool      `json:"specialty"`
	Icon            string    `json:"icon"`
	CreatedAt       time.Time `json:"createdAt"`
}

// BookingDump полный снимок бронирования для экспорта
type BookingDump struct {
	ID            string     `json:"id"`
	VehicleID     string     `json:"vehicleId"`
	ServiceTypeID *string    `json:"serviceTypeId,omitempty"`
	ScheduledDate time.Time  `json:"scheduledDate"`
	Status        string     `json:"status"`
	EstimatedCost float64    `json:"estimatedCost"`
	ActualCost    *float64   `json:"actualCost,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	CompletedDate *time.Time `json:"completedDate,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// ReminderDump полный снимок напоминания для экспорта
type ReminderDump struct {
	ID          string    `json:"id"`
	VehicleID   string    `json:"vehicleId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	Type        string    `json:"type"`
	Completed   bool      `json:"completed"`
	Urgent      bool      `json:"urgent"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ImportResult итог восстановления данных из backup-файла
type ImportResult struct {
	Vehicles     int `json:"vehicles"`
	ServiceTypes int `json:"serviceTypes"`
	Bookings     int `json:"bookings"`
	Reminders    int `json:"reminders"`
}

// FromDomainVehicle конвертирует domain модель в снимок для экспорта
func FromDomainVehicle(v *domain.Vehicle) VehicleDump {
	return VehicleDump{
		ID:              v.ID,
		Make:            v.Make,
		Model:           v.Model,
		Year:            v.Year,
		Registration:    v.Registration,
		Mileage:         v.Mileage,
		FuelType:        string(v.FuelType),
		Color:           v.Color,
		LastServiceDate: v.LastServiceDate,
		NextServiceDue:  v.NextServiceDue,
		MOTDueDate:      v.MOTDueDate,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

// ToDomainVehicle восстанавливает domain модель из снимка
func (d VehicleDump) ToDomainVehicle() *domain.Vehicle {
	return &domain.Vehicle{
		ID:              d.ID,
		Make:            d.Make,
		Model:           d.Model,
		Year:            d.Year,
		Registration:    domain.NormalizeRegistration(d.Registration),
		Mileage:         d.Mileage,
		FuelType:        domain.FuelType(d.FuelType),
		Color:           d.Color,
		LastServiceDate: d.LastServiceDate,
		NextServiceDue:  d.NextServiceDue,
		MOTDueDate:      d.MOTDueDate,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// FromDomainServiceType конвертирует domain модель в снимок для экспорта
func FromDomainServiceType(st *domain.ServiceType) ServiceTypeDump {
	return ServiceTypeDump{
		ID:              st.ID,
		Name:            st.Name,
		Description:     st.Description,
		DurationMinutes: st.DurationMinutes,
		PriceMin:        st.PriceMin,
		PriceMax:        st.PriceMax,
		Specialty:       st.Specialty,
		Icon:            st.Icon,
		CreatedAt:       st.CreatedAt,
	}
}

// ToDomainServiceType восстанавливает domain модель из снимка
func (d ServiceTypeDump) ToDomainServiceType() *domain.ServiceType {
	return &domain.ServiceType{
		ID:              d.ID,
		Name:            d.Name,
		Description:     d.Description,
		DurationMinutes: d.DurationMinutes,
		PriceMin:        d.PriceMin,
		PriceMax:        d.PriceMax,
		Specialty:       d.Specialty,
		Icon:            d.Icon,
		CreatedAt:       d.CreatedAt,
	}
}

// FromDomainBooking конвертирует domain модель в снимок для экспорта
func FromDomainBooking(b *domain.ServiceBooking) BookingDump {
	return BookingDump{
		ID:            b.ID,
		VehicleID:     b.VehicleID,
		ServiceTypeID: b.ServiceTypeID,
		ScheduledDate: b.ScheduledDate,
		Status:        string(b.Status),
		EstimatedCost: b.EstimatedCost,
		ActualCost:    b.ActualCost,
		Notes:         b.Notes,
		CompletedDate: b.CompletedDate,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// ToDomainBooking восстанавливает domain модель из снимка
func (d BookingDump) ToDomainBooking() *domain.ServiceBooking {
	return &domain.ServiceBooking{
		ID:            d.ID,
		VehicleID:     d.VehicleID,
		ServiceTypeID: d.ServiceTypeID,
		ScheduledDate: d.ScheduledDate,
		Status:        domain.BookingStatus(d.Status),
		EstimatedCost: d.EstimatedCost,
		ActualCost:    d.ActualCost,
		Notes:         d.Notes,
		CompletedDate: d.CompletedDate,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// FromDomainReminder конвертирует domain модель в снимок для экспорта
func FromDomainReminder(rem *domain.ServiceReminder) ReminderDump {
	return ReminderDump{
		ID:          rem.ID,
		VehicleID:   rem.VehicleID,
		Title:       rem.Title,
		Description: rem.Description,
		DueDate:     rem.DueDate,
		Type:        string(rem.Type),
		Completed:   rem.Completed,
		Urgent:      rem.Urgent,
		CreatedAt:   rem.CreatedAt,
		UpdatedAt:   rem.UpdatedAt,
	}
}

// ToDomainReminder восстанавливает domain модель из снимка
func (d ReminderDump) ToDomainReminder() *domain.ServiceReminder {
	return &domain.ServiceReminder{
		ID:          d.ID,
		VehicleID:   d.VehicleID,
		Title:       d.Title,
		Description: d.Description,
		DueDate:     d.DueDate,
		Type:        domain.ReminderType(d.Type),
		Completed:   d.Completed,
		Urgent:      d.Urgent,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
