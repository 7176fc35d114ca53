package capacity

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
)

// Resolver проверяет структурную допустимость запроса на резервацию.
// Не обращается к хранилищу и не знает о других резервациях.
type Resolver struct{}

// NewResolver создает новый экземпляр Resolver
func NewResolver() *Resolver {
	return &Resolver{}
}

// ValidateLocationRequest проверяет запрос на визит к шефу (площадка шефа).
// Возвращает nil или *domain.RejectionError.
func (r *Resolver) ValidateLocationRequest(location *domain.ChefHomeLocation, req Request, now time.Time) error {
	if err := validateTimeRange(req.Window); err != nil {
		return err
	}
	if !location.IsActive {
		return domain.Reject(domain.CodeLocationInactive, fmt.Sprintf("location %d is not accepting appointments", location.ID))
	}
	if !location.Capacity.Allows(req.Guests) {
		return domain.Reject(domain.CodeOutOfCapacity,
			fmt.Sprintf("guests must be between %d and %d, got %d", location.Capacity.MinGuests, location.Capacity.MaxGuests, req.Guests))
	}
	if !location.Availability.AllowsWeekday(req.Window.Date.Weekday()) {
		return domain.Reject(domain.CodeOutsideAvailabilityWindow,
			fmt.Sprintf("location is closed on %s", req.Window.Date.Weekday()))
	}
	return validateAvailability(location.Availability, req.Window, now)
}

// ValidateServiceRequest проверяет запрос на выездную услугу шефа.
// Границы гостей берутся из меню, день недели не проверяется.
func (r *Resolver) ValidateServiceRequest(availability domain.Availability, menu *domain.Menu, req Request, now time.Time) error {
	if err := validateTimeRange(req.Window); err != nil {
		return err
	}

	bounds := menuCapacity(menu)
	if !bounds.Allows(req.Guests) {
		return domain.Reject(domain.CodeOutOfCapacity,
			fmt.Sprintf("guests must be between %d and %d, got %d", bounds.MinGuests, bounds.MaxGuests, req.Guests))
	}
	return validateAvailability(availability, req.Window, now)
}

func validateTimeRange(w domain.TimeWindow) error {
	if err := w.Validate(); err != nil {
		return domain.Reject(domain.CodeInvalidTimeRange, err.Error())
	}
	return nil
}

// validateAvailability общие правила: blackout, lead time, горизонт бронирования, попадание в слот
func validateAvailability(a domain.Availability, w domain.TimeWindow, now time.Time) error {
	if a.IsBlackout(w.Date) {
		return domain.Reject(domain.CodeBlackoutDate,
			fmt.Sprintf("%s is a blackout date", w.Date.Format(domain.DateFormat)))
	}

	days := domain.DaysBetween(now, w.Date)
	if days < a.LeadTimeDays {
		return domain.Reject(domain.CodeLeadTimeViolation,
			fmt.Sprintf("must be booked at least %d days in advance", a.LeadTimeDays))
	}
	if a.HasAdvanceBookingLimit() && days > a.AdvanceBookingLimitDays {
		return domain.Reject(domain.CodeLeadTimeViolation,
			fmt.Sprintf("can only be booked %d days in advance", a.AdvanceBookingLimitDays))
	}

	if _, ok := a.SlotContaining(w.Start, w.End); !ok {
		return domain.Reject(domain.CodeOutsideAvailabilityWindow,
			fmt.Sprintf("%s-%s is not within any available time slot", w.Start, w.End))
	}
	return nil
}

func menuCapacity(menu *domain.Menu) domain.Capacity {
	bounds := domain.Capacity{MinGuests: domain.MinGuests, MaxGuests: domain.MaxGuests}
	if menu == nil {
		return bounds
	}
	if menu.MinGuests > 0 {
		bounds.MinGuests = menu.MinGuests
	}
	if menu.MaxGuests > 0 {
		bounds.MaxGuests = menu.MaxGuests
	}
	return bounds
}
