package create_booking

import (
	"time"
)

// Request модель запроса на создание бронирования
type Request struct {
	VehicleID     string    // ID автомобиля
	ServiceTypeID string    // ID типа услуги из справочника
	ScheduledDate time.Time // Дата и время бронирования
	Notes         *string   // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            string    // ID созданного бронирования
	VehicleID     string    // ID автомобиля
	ServiceTypeID *string   // ID типа услуги
	ScheduledDate time.Time // Дата бронирования
	Status        string    // Статус бронирования
	EstimatedCost float64   // Расчетная стоимость
	Notes         *string   // Заметки
	ReminderID    *string   // ID авто-напоминания, если оно было создано

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
