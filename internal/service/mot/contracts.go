package mot

import (
	"context"

	"github.com/m04kA/SMC-GarageService/internal/integrations/motapi"
)

// MOTClient интерфейс клиента MOT History API
type MOTClient interface {
	Lookup(ctx context.Context, registration string) (*motapi.VehicleData, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
