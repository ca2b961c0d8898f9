package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	// (в том числе из терминальных статусов completed/cancelled)
	ErrInvalidTransition = errors.New("bookings: invalid status transition")

	// ErrActualCostRequired возвращается при переходе в completed
	// без неотрицательной фактической стоимости
	ErrActualCostRequired = errors.New("bookings: actual cost is required to complete a booking")

	// ErrInvalidStatus возвращается при неизвестном статусе
	ErrInvalidStatus = errors.New("bookings: invalid booking status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
