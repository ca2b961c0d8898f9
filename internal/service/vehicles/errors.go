package vehicles

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("vehicles: vehicle not found")

	// ErrDuplicateRegistration возвращается, когда госномер уже занят
	// другим автомобилем (сравнение без учета регистра)
	ErrDuplicateRegistration = errors.New("vehicles: registration already exists")

	// ErrHasActiveBookings возвращается при попытке удалить автомобиль
	// с бронированиями в нетерминальных статусах
	ErrHasActiveBookings = errors.New("vehicles: vehicle has active bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("vehicles: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("vehicles: internal error")
)

// ValidationError ошибка валидации с ошибками по конкретным полям.
// errors.Is(err, ErrInvalidInput) возвращает true.
type ValidationError struct {
	Fields map[string]string
}

// Error возвращает все ошибки полей одной строкой
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(parts)
	return "vehicles: invalid input data: " + strings.Join(parts, "; ")
}

// Is поддерживает сопоставление с ErrInvalidInput
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
