package motapi

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// motExpiryDueSoonWindow окно "скоро истекает" для даты истечения MOT сертификата
const motExpiryDueSoonWindow = 14 * 24 * time.Hour

// Форматы дат, встречающиеся в ответах MOT API
var motDateFormats = []string{
	"2006.01.02 15:04:05",
	"2006.01.02",
	"2006-01-02",
	time.RFC3339,
}

// normalizeWithHistory нормализует форму (a).
// Статус MOT выводится из самого свежего теста (API отдает тесты
// от новых к старым): нет тестов - unknown, срок истек - expired,
// истекает в течение 14 дней - due_soon, иначе valid.
func normalizeWithHistory(v *vehicleWithHistory, now time.Time) *VehicleData {
	data := &VehicleData{
		Registration:  domain.NormalizeRegistration(v.Registration),
		Make:          v.Make,
		Model:         v.Model,
		Colour:        v.PrimaryColour,
		Year:          parseYear(v.ManufactureYear),
		FuelType:      v.FuelType,
		EngineSize:    v.EngineSize,
		MOTStatus:     domain.MOTStatusUnknown,
		HasMOTHistory: len(v.MotTests) > 0,
	}

	if len(v.MotTests) == 0 {
		return data
	}

	latest := v.MotTests[0]

	if expiry, ok := parseMOTDate(latest.ExpiryDate); ok {
		formatted := expiry.Format(domain.DateFormat)
		data.MOTExpiryDate = &formatted

		switch {
		case expiry.Before(now):
			data.MOTStatus = domain.MOTStatusExpired
		case expiry.Sub(now) <= motExpiryDueSoonWindow:
			data.MOTStatus = domain.MOTStatusDueSoon
		default:
			data.MOTStatus = domain.MOTStatusValid
		}
	}

	if odo, err := strconv.Atoi(latest.OdometerValue); err == nil {
		data.LatestMileage = &odo
	}

	return data
}

// normalizeNewRegistration нормализует форму (b): истории MOT еще нет,
// известна только дата первого обязательного теста.
func normalizeNewRegistration(v *newRegVehicle) *VehicleData {
	data := &VehicleData{
		Registration:  domain.NormalizeRegistration(v.Registration),
		Make:          v.Make,
		Model:         v.Model,
		Colour:        v.PrimaryColour,
		Year:          parseYear(v.ManufactureYear),
		FuelType:      v.FuelType,
		EngineSize:    v.EngineSize,
		MOTStatus:     domain.MOTStatusUnknown,
		HasMOTHistory: false,
	}

	if due, ok := parseMOTDate(v.MotTestDueDate); ok {
		formatted := due.Format(domain.DateFormat)
		data.MOTExpiryDate = &formatted
	}

	return data
}

func parseYear(s string) int {
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return year
}

func parseMOTDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range motDateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
