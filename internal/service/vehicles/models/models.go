package models

import (
	"time"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// Request модели

// CreateVehicleRequest запрос на регистрацию автомобиля
type CreateVehicleRequest struct {
	Make            string     `json:"make"`
	Model           string     `json:"model"`
	Year            int        `json:"year"`
	Registration    string     `json:"registration"`
	Mileage         int        `json:"mileage"`
	FuelType        string     `json:"fuelType"`
	Color           string     `json:"color"`
	LastServiceDate *time.Time `json:"lastServiceDate,omitempty"`
	NextServiceDue  *time.Time `json:"nextServiceDue,omitempty"`
	MOTDueDate      *time.Time `json:"motDueDate,omitempty"`
}

// UpdateVehicleRequest запрос на частичное обновление автомобиля.
// Применяются и валидируются только заполненные поля.
type UpdateVehicleRequest struct {
	Make            *string    `json:"make,omitempty"`
	Model           *string    `json:"model,omitempty"`
	Year            *int       `json:"year,omitempty"`
	Registration    *string    `json:"registration,omitempty"`
	Mileage         *int       `json:"mileage,omitempty"`
	FuelType        *string    `json:"fuelType,omitempty"`
	Color           *string    `json:"color,omitempty"`
	LastServiceDate *time.Time `json:"lastServiceDate,omitempty"`
	NextServiceDue  *time.Time `json:"nextServiceDue,omitempty"`
	MOTDueDate      *time.Time `json:"motDueDate,omitempty"`
}

// Response модели

// VehicleResponse ответ с данными автомобиля и производными статусами
type VehicleResponse struct {
	ID              string     `json:"id"`
	Make            string     `json:"make"`
	Model           string     `json:"model"`
	Year            int        `json:"year"`
	Registration    string     `json:"registration"`
	Mileage         int        `json:"mileage"`
	FuelType        string     `json:"fuelType"`
	Color           string     `json:"color"`
	LastServiceDate *time.Time `json:"lastServiceDate,omitempty"`
	NextServiceDue  *time.Time `json:"nextServiceDue,omitempty"`
	MOTDueDate      *time.Time `json:"motDueDate,omitempty"`
	ServiceStatus   string     `json:"serviceStatus"`
	MOTStatus       string     `json:"motStatus"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// VehicleListResponse ответ со списком автомобилей
type VehicleListResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
}

// FromDomainVehicle конвертирует domain модель в DTO.
// Производные статусы вычисляются на момент now.
func FromDomainVehicle(v *domain.Vehicle, now time.Time) *VehicleResponse {
	if v == nil {
		return nil
	}

	return &VehicleResponse{
		ID:              v.ID,
		Make:            v.Make,
		Model:           v.Model,
		Year:            v.Year,
		Registration:    v.Registration,
		Mileage:         v.Mileage,
		FuelType:        string(v.FuelType),
		Color:           v.Color,
		LastServiceDate: v.LastServiceDate,
		NextServiceDue:  v.NextServiceDue,
		MOTDueDate:      v.MOTDueDate,
		ServiceStatus:   string(v.ServiceStatusAt(now)),
		MOTStatus:       string(v.MOTStatusAt(now)),
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

// FromDomainVehicleList конвертирует список domain моделей в DTO
func FromDomainVehicleList(vehicles []*domain.Vehicle, now time.Time) *VehicleListResponse {
	resp := &VehicleListResponse{
		Vehicles: make([]VehicleResponse, 0, len(vehicles)),
	}

	for _, v := range vehicles {
		if vehicleResp := FromDomainVehicle(v, now); vehicleResp != nil {
			resp.Vehicles = append(resp.Vehicles, *vehicleResp)
		}
	}

	return resp
}
