package lookup_registration

import (
	"context"

	"github.com/m04kA/SMC-GarageService/internal/service/mot/models"
)

type MOTService interface {
	Lookup(ctx context.Context, registration string) (*models.LookupResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
