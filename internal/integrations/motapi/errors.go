package motapi

import "errors"

var (
	// ErrInvalidRegistration возвращается на HTTP 422 (некорректный формат госномера)
	ErrInvalidRegistration = errors.New("motapi: invalid registration format")

	// ErrVehicleNotFound возвращается на HTTP 404 (госномер не найден в реестре)
	ErrVehicleNotFound = errors.New("motapi: vehicle not found")

	// ErrNoDataAvailable возвращается, когда по госномеру нет данных
	ErrNoDataAvailable = errors.New("motapi: no data available for registration")

	// ErrNetwork возвращается при сетевых ошибках и неожиданных статус-кодах
	ErrNetwork = errors.New("motapi: network error")

	// ErrInvalidResponse возвращается, когда тело ответа не соответствует
	// ни одной из известных форм
	ErrInvalidResponse = errors.New("motapi: invalid response")

	// ErrRateLimited возвращается на HTTP 429
	ErrRateLimited = errors.New("motapi: rate limit exceeded")

	// ErrServer возвращается на HTTP 5xx
	ErrServer = errors.New("motapi: server error")

	// ErrAuthentication возвращается при ошибке получения OAuth2 токена
	ErrAuthentication = errors.New("motapi: authentication error")
)
