package reminders

import "errors"

var (
	// ErrReminderNotFound возвращается, когда напоминание не найдено
	ErrReminderNotFound = errors.New("reminders: reminder not found")

	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("reminders: vehicle not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reminders: internal error")
)
