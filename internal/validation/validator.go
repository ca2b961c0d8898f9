package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// emailPattern формат e-mail, принятый в формах приложения
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,64}$`)

// Validator накапливает ошибки валидации полей формы.
// На каждое поле хранится не более одной ошибки: новая ошибка
// по полю заменяет предыдущую, успешная проверка - снимает её.
type Validator struct {
	errors map[string]string
}

// New создает пустой валидатор
func New() *Validator {
	return &Validator{errors: make(map[string]string)}
}

func (v *Validator) setError(field, message string) {
	v.errors[field] = message
}

func (v *Validator) clearError(field string) {
	delete(v.errors, field)
}

// ValidateRequired проверяет, что значение непустое (после trim)
func (v *Validator) ValidateRequired(value, field, label string) bool {
	if strings.TrimSpace(value) == "" {
		v.setError(field, fmt.Sprintf("%s is required", label))
		return false
	}
	v.clearError(field)
	return true
}

// ValidateEmail проверяет формат e-mail
func (v *Validator) ValidateEmail(value, field string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		v.setError(field, "Email is required")
		return false
	}
	if !emailPattern.MatchString(trimmed) {
		v.setError(field, "Please enter a valid email address")
		return false
	}
	v.clearError(field)
	return true
}

// ValidateYear проверяет год выпуска: [1900, текущий год + 1]
func (v *Validator) ValidateYear(year int, field string, now time.Time) bool {
	maxYear := domain.MaxVehicleYear(now)
	if year < domain.MinVehicleYear || year > maxYear {
		v.setError(field, fmt.Sprintf("Year must be between %d and %d", domain.MinVehicleYear, maxYear))
		return false
	}
	v.clearError(field)
	return true
}

// ValidateMileage проверяет, что строка парсится как целое в [0, 999999]
func (v *Validator) ValidateMileage(value, field string) bool {
	mileage, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || mileage < domain.MinMileage || mileage > domain.MaxMileage {
		v.setError(field, "Mileage must be between 0 and 999,999")
		return false
	}
	v.clearError(field)
	return true
}

// ValidateRegistration проверяет длину госномера: [2, 10] символов после trim
func (v *Validator) ValidateRegistration(value, field string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		v.setError(field, "Registration is required")
		return false
	}
	if len(trimmed) < domain.MinRegistrationLen || len(trimmed) > domain.MaxRegistrationLen {
		v.setError(field, "Registration must be 2-10 characters")
		return false
	}
	v.clearError(field)
	return true
}

// HasError возвращает true, если по полю есть ошибка
func (v *Validator) HasError(field string) bool {
	_, ok := v.errors[field]
	return ok
}

// GetError возвращает текущую ошибку поля (пустая строка, если ошибки нет)
func (v *Validator) GetError(field string) string {
	return v.errors[field]
}

// IsValid возвращает true, если ни по одному полю нет ошибок
func (v *Validator) IsValid() bool {
	return len(v.errors) == 0
}

// Errors возвращает копию карты ошибок поле -> сообщение
func (v *Validator) Errors() map[string]string {
	out := make(map[string]string, len(v.errors))
	for k, val := range v.errors {
		out[k] = val
	}
	return out
}
