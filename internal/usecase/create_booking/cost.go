package create_booking

import (
	"time"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// EstimateCost рассчитывает стоимость услуги для конкретного автомобиля.
// База - минимальная цена услуги, далее мультипликативно применяются надбавки
// за возраст, пробег и EV-специализацию; итог ограничен максимальной ценой.
func EstimateCost(serviceType *domain.ServiceType, vehicle *domain.Vehicle, now time.Time) float64 {
	cost := serviceType.PriceMin
	age := vehicle.Age(now)

	if age > domain.VeryOldVehicleAgeYears {
		cost *= domain.CostMultiplierVeryOldVehicle
	} else if age > domain.OldVehicleAgeYears {
		cost *= domain.CostMultiplierOldVehicle
	}

	if vehicle.Mileage > domain.VeryHighMileageThreshold {
		cost *= domain.CostMultiplierVeryHighMileage
	} else if vehicle.Mileage > domain.HighMileageThreshold {
		cost *= domain.CostMultiplierHighMileage
	}

	if vehicle.IsElectric() && serviceType.Specialty {
		cost *= domain.CostMultiplierEVSpecialty
	}

	if cost > serviceType.PriceMax {
		cost = serviceType.PriceMax
	}

	return cost
}
