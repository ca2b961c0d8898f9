package domain

import "time"

// BookingStatus represents the status of a service booking
type BookingStatus string

const (
	StatusScheduled  BookingStatus = "scheduled"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// AllowedTransitions таблица допустимых переходов статусов бронирования.
// completed и cancelled - терминальные статусы, из них переходов нет.
var AllowedTransitions = map[BookingStatus][]BookingStatus{
	StatusScheduled:  {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// CanTransition returns true if from -> to is an allowed status transition
func CanTransition(from, to BookingStatus) bool {
	allowed, ok := AllowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// IsValid returns true if the status is one of the known values
func (s BookingStatus) IsValid() bool {
	_, ok := AllowedTransitions[s]
	return ok
}

// IsTerminal returns true for statuses with no further transitions
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ServiceBooking represents a workshop booking for a vehicle
type ServiceBooking struct {
	ID            string
	VehicleID     string
	ServiceTypeID *string // NULL, если тип услуги был удален из справочника
	ScheduledDate time.Time
	Status        BookingStatus
	EstimatedCost float64
	ActualCost    *float64 // Обязателен при переходе в completed
	Notes         *string
	CompletedDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking is in a non-terminal status
func (b *ServiceBooking) IsActive() bool {
	return !b.Status.IsTerminal()
}

// IsSameCalendarDay reports whether the booking is scheduled on the same
// calendar day as the given date, ignoring time of day.
func (b *ServiceBooking) IsSameCalendarDay(date time.Time) bool {
	y1, m1, d1 := b.ScheduledDate.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
