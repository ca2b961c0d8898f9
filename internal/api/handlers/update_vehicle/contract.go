package update_vehicle

import (
	"context"

	"github.com/m04kA/SMC-GarageService/internal/service/vehicles/models"
)

type VehicleService interface {
	Update(ctx context.Context, id string, req *models.UpdateVehicleRequest) (*models.VehicleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
