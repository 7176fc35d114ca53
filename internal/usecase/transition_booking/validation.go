package transition_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if !req.Actor.Role.IsValid() {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Actor.Role)
	}

	if !req.Event.IsValid() {
		return fmt.Errorf("%w: unknown event %q", ErrInvalidInput, req.Event)
	}

	// Разрешение спора идёт через отдельный сценарий с суммой возврата
	if req.Event == domain.BookingEventResolve {
		return fmt.Errorf("%w: disputes are resolved via the admin endpoint", ErrInvalidInput)
	}

	if req.Event == domain.BookingEventDispute && (req.Reason == nil || strings.TrimSpace(*req.Reason) == "") {
		return fmt.Errorf("%w: dispute reason is required", ErrInvalidInput)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	return nil
}
