package reminders

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/pkg/ptr"
)

var genNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func findByTitle(reminders []*domain.ServiceReminder, substr string) *domain.ServiceReminder {
	for _, r := range reminders {
		if strings.Contains(r.Title, substr) {
			return r
		}
	}
	return nil
}

func TestGenerateHighMileageReminder(t *testing.T) {
	v := &domain.Vehicle{ID: "veh-1", Year: 2024, Mileage: 80000, FuelType: domain.FuelPetrol}

	result := GenerateSmartReminders(v, genNow)
	rem := findByTitle(result, "High Mileage")

	require.NotNil(t, rem)
	assert.Equal(t, domain.ReminderService, rem.Type)
	assert.False(t, rem.Urgent)
	assert.Equal(t, genNow.AddDate(0, 0, 30), rem.DueDate)
}

func TestGenerateHighMileageUrgent(t *testing.T) {
	v := &domain.Vehicle{ID: "veh-1", Year: 2024, Mileage: 120000, FuelType: domain.FuelPetrol}

	rem := findByTitle(GenerateSmartReminders(v, genNow), "High Mileage")
	require.NotNil(t, rem)
	assert.True(t, rem.Urgent)
}

func TestGenerateBrakeCheckReminder(t *testing.T) {
	// Возраст 8 лет: проверка тормозов, не срочно
	v := &domain.Vehicle{ID: "veh-1", Year: genNow.Year() - 8, Mileage: 10000, FuelType: domain.FuelDiesel}

	rem := findByTitle(GenerateSmartReminders(v, genNow), "Brake")
	require.NotNil(t, rem)
	assert.Equal(t, domain.ReminderBrake, rem.Type)
	assert.False(t, rem.Urgent)
	assert.Equal(t, genNow.AddDate(0, 0, 60), rem.DueDate)

	// Возраст 12 лет: срочно
	v.Year = genNow.Year() - 12
	rem = findByTitle(GenerateSmartReminders(v, genNow), "Brake")
	require.NotNil(t, rem)
	assert.True(t, rem.Urgent)
}

func TestGenerateEVBatteryReminder(t *testing.T) {
	v := &domain.Vehicle{ID: "veh-1", Year: 2024, Mileage: 150000, FuelType: domain.FuelElectric}

	rem := findByTitle(GenerateSmartReminders(v, genNow), "Battery")
	require.NotNil(t, rem)
	assert.Equal(t, domain.ReminderBattery, rem.Type)
	// Проверка батареи никогда не срочная, даже при большом пробеге
	assert.False(t, rem.Urgent)
	assert.Equal(t, genNow.AddDate(0, 0, 90), rem.DueDate)

	// Гибрид - не электромобиль
	v.FuelType = domain.FuelHybrid
	assert.Nil(t, findByTitle(GenerateSmartReminders(v, genNow), "Battery"))
}

func TestGenerateMOTReminder(t *testing.T) {
	motDue := genNow.AddDate(0, 0, 45)
	v := &domain.Vehicle{
		ID:         "veh-1",
		Year:       2024,
		Mileage:    10000,
		FuelType:   domain.FuelPetrol,
		MOTDueDate: ptr.Ptr(motDue),
	}

	rem := findByTitle(GenerateSmartReminders(v, genNow), "MOT")
	require.NotNil(t, rem)
	assert.Equal(t, domain.ReminderMOT, rem.Type)
	assert.False(t, rem.Urgent)
	// Напоминание за 7 дней до истечения MOT
	assert.Equal(t, motDue.AddDate(0, 0, -7), rem.DueDate)
}

func TestGenerateMOTReminderUrgentWindow(t *testing.T) {
	v := &domain.Vehicle{
		ID:         "veh-1",
		Year:       2024,
		Mileage:    10000,
		FuelType:   domain.FuelPetrol,
		MOTDueDate: ptr.Ptr(genNow.AddDate(0, 0, 20)),
	}

	rem := findByTitle(GenerateSmartReminders(v, genNow), "MOT")
	require.NotNil(t, rem)
	assert.True(t, rem.Urgent)
}

func TestGenerateMOTReminderOutsideWindow(t *testing.T) {
	// MOT дальше 60 дней - напоминание не создается
	v := &domain.Vehicle{
		ID:         "veh-1",
		Year:       2024,
		Mileage:    10000,
		FuelType:   domain.FuelPetrol,
		MOTDueDate: ptr.Ptr(genNow.AddDate(0, 0, 90)),
	}
	assert.Nil(t, findByTitle(GenerateSmartReminders(v, genNow), "MOT"))

	// Уже истекший MOT тоже не попадает в окно
	v.MOTDueDate = ptr.Ptr(genNow.AddDate(0, 0, -5))
	assert.Nil(t, findByTitle(GenerateSmartReminders(v, genNow), "MOT"))
}

func TestGenerateNoRemindersForHealthyVehicle(t *testing.T) {
	v := &domain.Vehicle{ID: "veh-1", Year: 2024, Mileage: 20000, FuelType: domain.FuelPetrol}
	assert.Empty(t, GenerateSmartReminders(v, genNow))
}
