package reminders

import (
	"time"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// GenerateSmartReminders строит список рекомендуемых напоминаний
// по текущему состоянию автомобиля. Чистая функция: ничего не
// сохраняет, ID у результатов не проставлены.
//
// Эвристики (пороги - фиксированные константы domain):
//   - пробег > 60000 - рекомендация сервиса по пробегу, срочно при > 100000
//   - возраст > 5 лет - проверка тормозной системы, срочно при > 10 лет
//   - электромобиль - проверка батареи, никогда не срочно
//   - MOT истекает в пределах 60 дней - напоминание за 7 дней до истечения,
//     срочно при остатке <= 30 дней
func GenerateSmartReminders(v *domain.Vehicle, now time.Time) []*domain.ServiceReminder {
	var result []*domain.ServiceReminder

	if v.Mileage > domain.HighMileageThreshold {
		result = append(result, &domain.ServiceReminder{
			VehicleID:   v.ID,
			Title:       "High Mileage Service Recommended",
			Description: "Vehicle has covered significant mileage and is due a full service.",
			DueDate:     now.AddDate(0, 0, domain.HighMileageReminderDueDays),
			Type:        domain.ReminderService,
			Urgent:      v.Mileage > domain.VeryHighMileageThreshold,
		})
	}

	if age := v.Age(now); age > domain.OldVehicleAgeYears {
		result = append(result, &domain.ServiceReminder{
			VehicleID:   v.ID,
			Title:       "Brake System Check Due",
			Description: "Older vehicles need regular brake system inspections.",
			DueDate:     now.AddDate(0, 0, domain.BrakeCheckReminderDueDays),
			Type:        domain.ReminderBrake,
			Urgent:      age > domain.VeryOldVehicleAgeYears,
		})
	}

	if v.IsElectric() {
		result = append(result, &domain.ServiceReminder{
			VehicleID:   v.ID,
			Title:       "EV Battery Health Check",
			Description: "Periodic battery health check keeps range predictable.",
			DueDate:     now.AddDate(0, 0, domain.EVBatteryReminderDueDays),
			Type:        domain.ReminderBattery,
			Urgent:      false,
		})
	}

	if v.MOTDueDate != nil {
		daysLeft := v.MOTDueDate.Sub(now).Hours() / 24
		if daysLeft > 0 && daysLeft <= domain.MOTReminderWindowDays {
			result = append(result, &domain.ServiceReminder{
				VehicleID:   v.ID,
				Title:       "MOT Test Due Soon",
				Description: "Book an MOT test before the current certificate expires.",
				DueDate:     v.MOTDueDate.AddDate(0, 0, -domain.MOTReminderLeadDays),
				Type:        domain.ReminderMOT,
				Urgent:      daysLeft <= domain.MOTReminderUrgentDays,
			})
		}
	}

	return result
}
