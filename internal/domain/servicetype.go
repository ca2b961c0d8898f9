package domain

import "time"

// ServiceType represents an immutable workshop service catalogue entry.
// Seeded at first run, referenced (never owned) by bookings.
type ServiceType struct {
	ID              string
	Name            string
	Description     string
	DurationMinutes int
	PriceMin        float64
	PriceMax        float64
	Specialty       bool // Услуга, требующая специализированных навыков (влияет на расчет стоимости)
	Icon            string

	CreatedAt time.Time
}

// HasValidPriceRange returns true if min <= max
func (s *ServiceType) HasValidPriceRange() bool {
	return s.PriceMin <= s.PriceMax
}
