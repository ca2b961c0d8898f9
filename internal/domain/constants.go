package domain

import "time"

// Vehicle validation constants
const (
	MinVehicleYear     = 1900
	MinMileage         = 0
	MaxMileage         = 999999
	MinRegistrationLen = 2
	MaxRegistrationLen = 10
)

// Fixed maintenance policy thresholds (не конфигурируются)
const (
	HighMileageThreshold     = 60000
	VeryHighMileageThreshold = 100000
	OldVehicleAgeYears       = 5
	VeryOldVehicleAgeYears   = 10
)

// Cost estimation multipliers. Применяются мультипликативно,
// ограничение максимальной ценой услуги - в самом конце.
const (
	CostMultiplierVeryOldVehicle  = 1.20
	CostMultiplierOldVehicle      = 1.10
	CostMultiplierVeryHighMileage = 1.15
	CostMultiplierHighMileage     = 1.05
	CostMultiplierEVSpecialty     = 1.10
)

// Reminder policy constants
const (
	// StatusDueSoonWindow окно "скоро истекает" для сервиса и MOT
	StatusDueSoonWindow = 30 * 24 * time.Hour

	// BookingReminderThresholdDays бронирования дальше этого срока получают авто-напоминание
	BookingReminderThresholdDays = 7
	// BookingReminderLeadDays авто-напоминание ставится за столько дней до бронирования
	BookingReminderLeadDays = 2

	// Сроки smart-напоминаний
	HighMileageReminderDueDays = 30
	BrakeCheckReminderDueDays  = 60
	EVBatteryReminderDueDays   = 90
	MOTReminderWindowDays      = 60
	MOTReminderLeadDays        = 7
	MOTReminderUrgentDays      = 30
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// MaxVehicleYear максимально допустимый год выпуска (следующий модельный год)
func MaxVehicleYear(now time.Time) int {
	return now.Year() + 1
}
