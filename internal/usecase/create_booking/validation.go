package create_booking

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.VehicleID) == "" {
		return fmt.Errorf("%w: vehicleID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ServiceTypeID) == "" {
		return fmt.Errorf("%w: serviceTypeID is required", ErrInvalidInput)
	}

	if req.ScheduledDate.IsZero() {
		return fmt.Errorf("%w: scheduledDate is required", ErrInvalidInput)
	}

	return nil
}
