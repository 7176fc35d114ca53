package create_booking

import (
	"fmt"
	"math"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Actor.UserID <= 0 {
		return fmt.Errorf("%w: actor userID must be positive", ErrInvalidInput)
	}

	if req.ChefID <= 0 {
		return fmt.Errorf("%w: chefID must be positive", ErrInvalidInput)
	}

	if req.MenuID != nil && *req.MenuID <= 0 {
		return fmt.Errorf("%w: menuID must be positive", ErrInvalidInput)
	}

	if !req.ServiceType.IsValid() {
		return fmt.Errorf("%w: unknown serviceType %q", ErrInvalidInput, req.ServiceType)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.DurationMinutes < domain.MinDurationMinutes || req.DurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}

	if req.Guests <= 0 {
		return fmt.Errorf("%w: guests must be positive", ErrInvalidInput)
	}

	if req.Location.Address == "" || req.Location.City == "" || req.Location.ZipCode == "" {
		return fmt.Errorf("%w: location address, city and zipCode are required", ErrInvalidInput)
	}

	return nil
}

// calculateTotal стоимость: цена меню для forfait, иначе ставка шефа * часы
func calculateTotal(chef *domain.Chef, menu *domain.Menu, durationMinutes int) float64 {
	if menu != nil && menu.Type == domain.MenuTypeFlatRate {
		return roundCents(menu.Price)
	}
	return roundCents(chef.HourlyRate * float64(durationMinutes) / 60)
}

// calculateDeposit депозит как процент от общей стоимости
func calculateDeposit(total float64, depositPercent int) float64 {
	return roundCents(total * float64(depositPercent) / 100)
}

func roundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
