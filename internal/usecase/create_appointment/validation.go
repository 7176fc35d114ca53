package create_appointment

import (
	"fmt"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Порядок времени (start < end) проверяет CapacityResolver, чтобы вернуть INVALID_TIME_RANGE
func validateRequest(req *Request) error {
	if req.Actor.UserID <= 0 {
		return fmt.Errorf("%w: actor userID must be positive", ErrInvalidInput)
	}

	if req.LocationID <= 0 {
		return fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid end time: %v", ErrInvalidInput, err)
	}

	if req.Guests <= 0 {
		return fmt.Errorf("%w: guests must be positive", ErrInvalidInput)
	}

	if req.Message != nil && len(*req.Message) > domain.MaxMessageLength {
		return fmt.Errorf("%w: message must not exceed %d characters", ErrInvalidInput, domain.MaxMessageLength)
	}

	return nil
}
