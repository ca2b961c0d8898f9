package domain

import (
	"strings"
	"time"
)

// NormalizeRegistration приводит госномер к каноническому виду:
// убирает все пробельные символы и переводит в верхний регистр.
func NormalizeRegistration(reg string) string {
	return strings.ToUpper(strings.Join(strings.Fields(reg), ""))
}

// FuelType represents the fuel type of a vehicle
type FuelType string

const (
	FuelPetrol       FuelType = "petrol"
	FuelDiesel       FuelType = "diesel"
	FuelElectric     FuelType = "electric"
	FuelHybrid       FuelType = "hybrid"
	FuelPluginHybrid FuelType = "plugin-hybrid"
)

// FuelTypes список всех допустимых типов топлива
var FuelTypes = []FuelType{
	FuelPetrol,
	FuelDiesel,
	FuelElectric,
	FuelHybrid,
	FuelPluginHybrid,
}

// IsValid returns true if the fuel type is one of the known values
func (f FuelType) IsValid() bool {
	for _, t := range FuelTypes {
		if f == t {
			return true
		}
	}
	return false
}

// ServiceStatus derived servicing state of a vehicle
type ServiceStatus string

const (
	ServiceStatusUnknown  ServiceStatus = "unknown"
	ServiceStatusOverdue  ServiceStatus = "overdue"
	ServiceStatusDueSoon  ServiceStatus = "due_soon"
	ServiceStatusUpToDate ServiceStatus = "up_to_date"
)

// MOTStatus derived MOT certificate state of a vehicle
type MOTStatus string

const (
	MOTStatusUnknown MOTStatus = "unknown"
	MOTStatusExpired MOTStatus = "expired"
	MOTStatusDueSoon MOTStatus = "due_soon"
	MOTStatusValid   MOTStatus = "valid"
)

// Vehicle represents a customer vehicle in the system
type Vehicle struct {
	ID              string
	Make            string
	Model           string
	Year            int
	Registration    string // Нормализованный госномер (trim + uppercase), уникален без учета регистра
	Mileage         int
	FuelType        FuelType
	Color           string
	LastServiceDate *time.Time
	NextServiceDue  *time.Time
	MOTDueDate      *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Age returns the age of the vehicle in years as of now
func (v *Vehicle) Age(now time.Time) int {
	age := now.Year() - v.Year
	if age < 0 {
		return 0
	}
	return age
}

// IsElectric returns true for pure electric vehicles
func (v *Vehicle) IsElectric() bool {
	return v.FuelType == FuelElectric
}

// ServiceStatusAt derives the service status from NextServiceDue.
// Depends only on the stored date and the passed current time.
func (v *Vehicle) ServiceStatusAt(now time.Time) ServiceStatus {
	if v.NextServiceDue == nil {
		return ServiceStatusUnknown
	}
	due := *v.NextServiceDue
	if due.Before(now) {
		return ServiceStatusOverdue
	}
	if due.Sub(now) <= StatusDueSoonWindow {
		return ServiceStatusDueSoon
	}
	return ServiceStatusUpToDate
}

// MOTStatusAt derives the MOT status from MOTDueDate.
func (v *Vehicle) MOTStatusAt(now time.Time) MOTStatus {
	if v.MOTDueDate == nil {
		return MOTStatusUnknown
	}
	due := *v.MOTDueDate
	if due.Before(now) {
		return MOTStatusExpired
	}
	if due.Sub(now) <= StatusDueSoonWindow {
		return MOTStatusDueSoon
	}
	return MOTStatusValid
}
