package servicetypes

import "errors"

var (
	// ErrServiceTypeNotFound возвращается, когда тип услуги не найден
	ErrServiceTypeNotFound = errors.New("servicetypes: service type not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("servicetypes: internal error")
)
