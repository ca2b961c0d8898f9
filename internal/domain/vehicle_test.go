package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRegistration(t *testing.T) {
	assert.Equal(t, "AB12CDE", NormalizeRegistration("ab12 cde"))
	assert.Equal(t, "AB12CDE", NormalizeRegistration("  AB12 CDE  "))
	assert.Equal(t, "AB12CDE", NormalizeRegistration("ab12cde"))
	assert.Equal(t, "", NormalizeRegistration("   "))
}

func TestFuelTypeIsValid(t *testing.T) {
	for _, f := range FuelTypes {
		assert.True(t, f.IsValid(), "fuel type %s must be valid", f)
	}
	assert.False(t, FuelType("gasoline").IsValid())
	assert.False(t, FuelType("").IsValid())
}

func TestVehicleAge(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	v := &Vehicle{Year: 2018}
	assert.Equal(t, 8, v.Age(now))

	// Следующий модельный год не дает отрицательный возраст
	v = &Vehicle{Year: 2027}
	assert.Equal(t, 0, v.Age(now))
}

func TestServiceStatusAt(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	v := &Vehicle{}
	assert.Equal(t, ServiceStatusUnknown, v.ServiceStatusAt(now))

	past := now.AddDate(0, 0, -1)
	v = &Vehicle{NextServiceDue: &past}
	assert.Equal(t, ServiceStatusOverdue, v.ServiceStatusAt(now))

	soon := now.AddDate(0, 0, 10)
	v = &Vehicle{NextServiceDue: &soon}
	assert.Equal(t, ServiceStatusDueSoon, v.ServiceStatusAt(now))

	far := now.AddDate(0, 0, 45)
	v = &Vehicle{NextServiceDue: &far}
	assert.Equal(t, ServiceStatusUpToDate, v.ServiceStatusAt(now))
}

func TestMOTStatusAt(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	v := &Vehicle{}
	assert.Equal(t, MOTStatusUnknown, v.MOTStatusAt(now))

	past := now.AddDate(0, 0, -1)
	v = &Vehicle{MOTDueDate: &past}
	assert.Equal(t, MOTStatusExpired, v.MOTStatusAt(now))

	soon := now.AddDate(0, 0, 30)
	v = &Vehicle{MOTDueDate: &soon}
	assert.Equal(t, MOTStatusDueSoon, v.MOTStatusAt(now))

	far := now.AddDate(0, 0, 31)
	v = &Vehicle{MOTDueDate: &far}
	assert.Equal(t, MOTStatusValid, v.MOTStatusAt(now))
}
