package list_service_types

import (
	"context"

	"github.com/m04kA/SMC-GarageService/internal/service/servicetypes/models"
)

type ServiceTypeService interface {
	List(ctx context.Context) (*models.ServiceTypeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
