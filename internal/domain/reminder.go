package domain

import "time"

// ReminderType represents the category of a service reminder
type ReminderType string

const (
	ReminderService   ReminderType = "service"
	ReminderMOT       ReminderType = "mot"
	ReminderInsurance ReminderType = "insurance"
	ReminderRoadTax   ReminderType = "road_tax"
	ReminderTyres     ReminderType = "tyres"
	ReminderBrake     ReminderType = "brake"
	ReminderBattery   ReminderType = "battery"
)

// ReminderTypes список всех допустимых типов напоминаний
var ReminderTypes = []ReminderType{
	ReminderService,
	ReminderMOT,
	ReminderInsurance,
	ReminderRoadTax,
	ReminderTyres,
	ReminderBrake,
	ReminderBattery,
}

// IsValid returns true if the reminder type is one of the known values
func (t ReminderType) IsValid() bool {
	for _, rt := range ReminderTypes {
		if t == rt {
			return true
		}
	}
	return false
}

// ServiceReminder represents a maintenance reminder for a vehicle
type ServiceReminder struct {
	ID          string
	VehicleID   string
	Title       string
	Description string
	DueDate     time.Time
	Type        ReminderType
	Completed   bool
	Urgent      bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOverdue returns true if the reminder is incomplete and past due
func (r *ServiceReminder) IsOverdue(now time.Time) bool {
	return !r.Completed && r.DueDate.Before(now)
}
