package models

import (
	"github.com/m04kA/SMC-GarageService/internal/integrations/motapi"
)

// LookupResponse нормализованные данные автомобиля из MOT History API.
// Используются для предзаполнения формы регистрации автомобиля.
type LookupResponse struct {
	Registration  string  `json:"registration"`
	Make          string  `json:"make"`
	Model         string  `json:"model"`
	Colour        string  `json:"colour"`
	Year          int     `json:"year"`
	FuelType      string  `json:"fuelType"`
	EngineSize    string  `json:"engineSize"`
	MOTStatus     string  `json:"motStatus"`
	MOTExpiryDate *string `json:"motExpiryDate,omitempty"`
	LatestMileage *int    `json:"latestMileage,omitempty"`
	HasMOTHistory bool    `json:"hasMotHistory"`
}

// FromVehicleData конвертирует ответ клиента в DTO
func FromVehicleData(data *motapi.VehicleData) *LookupResponse {
	if data == nil {
		return nil
	}

	return &LookupResponse{
		Registration:  data.Registration,
		Make:          data.Make,
		Model:         data.Model,
		Colour:        data.Colour,
		Year:          data.Year,
		FuelType:      data.FuelType,
		EngineSize:    data.EngineSize,
		MOTStatus:     string(data.MOTStatus),
		MOTExpiryDate: data.MOTExpiryDate,
		LatestMileage: data.LatestMileage,
		HasMOTHistory: data.HasMOTHistory,
	}
}
