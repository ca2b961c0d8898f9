package models

import (
	"time"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// ReminderResponse ответ с данными напоминания
type ReminderResponse struct {
	ID          string    `json:"id"`
	VehicleID   string    `json:"vehicleId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	Type        string    `json:"type"`
	Completed   bool      `json:"completed"`
	Urgent      bool      `json:"urgent"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ReminderListResponse ответ со списком напоминаний
type ReminderListResponse struct {
	Reminders []ReminderResponse `json:"reminders"`
}

// CleanupResponse результат очистки выполненных напоминаний
type CleanupResponse struct {
	Deleted int64 `json:"deleted"`
}

// FromDomainReminder конвертирует domain модель в DTO
func FromDomainReminder(r *domain.ServiceReminder) *ReminderResponse {
	if r == nil {
		return nil
	}

	return &ReminderResponse{
		ID:          r.ID,
		VehicleID:   r.VehicleID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Type:        string(r.Type),
		Completed:   r.Completed,
		Urgent:      r.Urgent,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// FromDomainReminderList конвертирует список domain моделей в DTO
func FromDomainReminderList(reminders []*domain.ServiceReminder) *ReminderListResponse {
	resp := &ReminderListResponse{
		Reminders: make([]ReminderResponse, 0, len(reminders)),
	}

	for _, reminder := range reminders {
		if reminderResp := FromDomainReminder(reminder); reminderResp != nil {
			resp.Reminders = append(resp.Reminders, *reminderResp)
		}
	}

	return resp
}
