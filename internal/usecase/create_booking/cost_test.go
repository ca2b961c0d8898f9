package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

var costNow = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

func standardService() *domain.ServiceType {
	return &domain.ServiceType{
		Name:     "Full Service",
		PriceMin: 100,
		PriceMax: 200,
	}
}

func TestEstimateCostOldHighMileage(t *testing.T) {
	// 12 лет, 120000 миль: 100 x 1.20 x 1.15 = 138, до потолка не доходит
	v := &domain.Vehicle{
		Year:     2014,
		Mileage:  120000,
		FuelType: domain.FuelPetrol,
	}

	cost := EstimateCost(standardService(), v, costNow)
	assert.InDelta(t, 138.0, cost, 0.001)
}

func TestEstimateCostBaseline(t *testing.T) {
	// Новый автомобиль с малым пробегом - без надбавок
	v := &domain.Vehicle{
		Year:     2024,
		Mileage:  15000,
		FuelType: domain.FuelDiesel,
	}

	cost := EstimateCost(standardService(), v, costNow)
	assert.InDelta(t, 100.0, cost, 0.001)
}

func TestEstimateCostAgeBrackets(t *testing.T) {
	// возраст > 5 лет: x1.10; возраст > 10 лет: x1.20 (не оба сразу)
	v := &domain.Vehicle{Year: 2019, Mileage: 10000, FuelType: domain.FuelPetrol}
	assert.InDelta(t, 110.0, EstimateCost(standardService(), v, costNow), 0.001)

	v = &domain.Vehicle{Year: 2010, Mileage: 10000, FuelType: domain.FuelPetrol}
	assert.InDelta(t, 120.0, EstimateCost(standardService(), v, costNow), 0.001)

	// Граница: ровно 5 лет - без надбавки
	v = &domain.Vehicle{Year: 2021, Mileage: 10000, FuelType: domain.FuelPetrol}
	assert.InDelta(t, 100.0, EstimateCost(standardService(), v, costNow), 0.001)
}

func TestEstimateCostMileageBrackets(t *testing.T) {
	// пробег > 60000: x1.05; пробег > 100000: x1.15 (не оба сразу)
	v := &domain.Vehicle{Year: 2024, Mileage: 80000, FuelType: domain.FuelPetrol}
	assert.InDelta(t, 105.0, EstimateCost(standardService(), v, costNow), 0.001)

	v = &domain.Vehicle{Year: 2024, Mileage: 100001, FuelType: domain.FuelPetrol}
	assert.InDelta(t, 115.0, EstimateCost(standardService(), v, costNow), 0.001)

	// Граница: ровно 60000 - без надбавки
	v = &domain.Vehicle{Year: 2024, Mileage: 60000, FuelType: domain.FuelPetrol}
	assert.InDelta(t, 100.0, EstimateCost(standardService(), v, costNow), 0.001)
}

func TestEstimateCostEVSpecialty(t *testing.T) {
	ev := &domain.Vehicle{Year: 2024, Mileage: 10000, FuelType: domain.FuelElectric}

	specialty := standardService()
	specialty.Specialty = true
	assert.InDelta(t, 110.0, EstimateCost(specialty, ev, costNow), 0.001)

	// Надбавка только при сочетании: электромобиль И специализированная услуга
	regular := standardService()
	assert.InDelta(t, 100.0, EstimateCost(regular, ev, costNow), 0.001)

	hybrid := &domain.Vehicle{Year: 2024, Mileage: 10000, FuelType: domain.FuelHybrid}
	assert.InDelta(t, 100.0, EstimateCost(specialty, hybrid, costNow), 0.001)
}

func TestEstimateCostCappedAtMax(t *testing.T) {
	// Все надбавки сразу: 100 x 1.20 x 1.15 x 1.10 = 151.8, потолок 140
	v := &domain.Vehicle{
		Year:     2012,
		Mileage:  150000,
		FuelType: domain.FuelElectric,
	}

	st := &domain.ServiceType{
		Name:      "EV Battery Diagnostics",
		PriceMin:  100,
		PriceMax:  140,
		Specialty: true,
	}

	cost := EstimateCost(st, v, costNow)
	assert.InDelta(t, 140.0, cost, 0.001)
}
