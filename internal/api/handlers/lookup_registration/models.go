package lookup_registration

import (
	"github.com/m04kA/SMC-GarageService/internal/service/mot/models"
)

// LookupErrorResponse ответ с ошибкой внешнего API и подсказкой для клиента.
// ManualEntry - предложить ручной ввод данных, Retryable - можно повторить запрос.
type LookupErrorResponse struct {
	Error       string `json:"error"`
	ManualEntry bool   `json:"manualEntry"`
	Retryable   bool   `json:"retryable"`
}

// LookupSuccessResponse ответ с данными автомобиля для предзаполнения формы
type LookupSuccessResponse struct {
	Vehicle *models.LookupResponse `json:"vehicle"`
}
