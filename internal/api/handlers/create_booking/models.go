package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-GarageService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	VehicleID     string  `json:"vehicleId"`
	ServiceTypeID string  `json:"serviceTypeId"`
	ScheduledDate string  `json:"scheduledDate"` // RFC 3339, например "2026-09-15T10:00:00Z"
	Notes         *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            string  `json:"id"`
	VehicleID     string  `json:"vehicleId"`
	ServiceTypeID *string `json:"serviceTypeId,omitempty"`
	ScheduledDate string  `json:"scheduledDate"`
	Status        string  `json:"status"`
	EstimatedCost float64 `json:"estimatedCost"`
	Notes         *string `json:"notes,omitempty"`
	ReminderID    *string `json:"reminderId,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	scheduledDate, err := time.Parse(time.RFC3339, r.ScheduledDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		VehicleID:     r.VehicleID,
		ServiceTypeID: r.ServiceTypeID,
		ScheduledDate: scheduledDate,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		VehicleID:     resp.VehicleID,
		ServiceTypeID: resp.ServiceTypeID,
		ScheduledDate: resp.ScheduledDate.Format(time.RFC3339),
		Status:        resp.Status,
		EstimatedCost: resp.EstimatedCost,
		Notes:         resp.Notes,
		ReminderID:    resp.ReminderID,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
