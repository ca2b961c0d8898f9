package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// UpdateStatusRequest запрос на перевод бронирования в новый статус.
// ActualCost обязателен при переходе в completed; CompletedDate
// опционален (по умолчанию - текущее время).
type UpdateStatusRequest struct {
	Status        string     `json:"status"`
	ActualCost    *float64   `json:"actualCost,omitempty"`
	CompletedDate *time.Time `json:"completedDate,omitempty"`
}

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	VehicleID *string `json:"vehicleId,omitempty"`
	Status    *string `json:"status,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            string     `json:"id"`
	VehicleID     string     `json:"vehicleId"`
	ServiceTypeID *string    `json:"serviceTypeId,omitempty"`
	ScheduledDate time.Time  `json:"scheduledDate"`
	Status        string     `json:"status"`
	EstimatedCost float64    `json:"estimatedCost"`
	ActualCost    *float64   `json:"actualCost,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	CompletedDate *time.Time `json:"completedDate,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.ServiceBooking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:            b.ID,
		VehicleID:     b.VehicleID,
		ServiceTypeID: b.ServiceTypeID,
		ScheduledDate: b.ScheduledDate,
		Status:        string(b.Status),
		EstimatedCost: b.EstimatedCost,
		ActualCost:    b.ActualCost,
		Notes:         b.Notes,
		CompletedDate: b.CompletedDate,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.ServiceBooking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
