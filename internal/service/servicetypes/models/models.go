package models

import (
	"time"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// ServiceTypeResponse ответ с данными типа услуги
type ServiceTypeResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"durationMinutes"`
	PriceMin        float64   `json:"priceMin"`
	PriceMax        float64   `json:"priceMax"`
	Specialty       bool      `json:"specialty"`
	Icon            string    `json:"icon"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ServiceTypeListResponse ответ со списком типов услуг
type ServiceTypeListResponse struct {
	ServiceTypes []ServiceTypeResponse `json:"serviceTypes"`
}

// FromDomainServiceType конвертирует domain модель в DTO
func FromDomainServiceType(st *domain.ServiceType) *ServiceTypeResponse {
	if st == nil {
		return nil
	}

	return &ServiceTypeResponse{
		ID:              st.ID,
		Name:            st.Name,
		Description:     st.Description,
		DurationMinutes: st.DurationMinutes,
		PriceMin:        st.PriceMin,
		PriceMax:        st.PriceMax,
		Specialty:       st.Specialty,
		Icon:            st.Icon,
		CreatedAt:       st.CreatedAt,
	}
}

// FromDomainServiceTypeList конвертирует список domain моделей в DTO
func FromDomainServiceTypeList(types []*domain.ServiceType) *ServiceTypeListResponse {
	resp := &ServiceTypeListResponse{
		ServiceTypes: make([]ServiceTypeResponse, 0, len(types)),
	}

	for _, st := range types {
		if stResp := FromDomainServiceType(st); stResp != nil {
			resp.ServiceTypes = append(resp.ServiceTypes, *stResp)
		}
	}

	return resp
}
