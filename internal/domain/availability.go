package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ChefReservationService/pkg/types"
)

// TimeSlot объявленное окно доступности [Start, End)
type TimeSlot struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// Validate проверяет формат и что Start < End
func (s TimeSlot) Validate() error {
	if err := s.Start.Validate(); err != nil {
		return err
	}
	if err := s.End.Validate(); err != nil {
		return err
	}
	if !s.Start.IsBefore(s.End) {
		return fmt.Errorf("time slot %s-%s: start must be before end", s.Start, s.End)
	}
	return nil
}

// Contains проверяет, что [start, end) целиком лежит внутри слота
func (s TimeSlot) Contains(start, end types.TimeString) bool {
	return !start.IsBefore(s.Start) && !end.IsAfter(s.End)
}

// Availability правила доступности шефа или площадки
type Availability struct {
	DaysOfWeek              []time.Weekday
	TimeSlots               []TimeSlot
	LeadTimeDays            int
	AdvanceBookingLimitDays int // 0 = без ограничений
	BlackoutDates           []time.Time
}

// DefaultChefAvailability доступность шефа, если он не настроил свою
func DefaultChefAvailability() Availability {
	return Availability{
		TimeSlots:               []TimeSlot{{Start: DefaultDayStart, End: DefaultDayEnd}},
		LeadTimeDays:            DefaultLeadTimeDays,
		AdvanceBookingLimitDays: DefaultAdvanceBookingLimitDays,
	}
}

// Validate проверяет инварианты правил доступности
func (a *Availability) Validate() error {
	if len(a.TimeSlots) == 0 {
		return fmt.Errorf("at least one time slot is required")
	}
	for _, slot := range a.TimeSlots {
		if err := slot.Validate(); err != nil {
			return err
		}
	}
	for _, d := range a.DaysOfWeek {
		if d < time.Sunday || d > time.Saturday {
			return fmt.Errorf("invalid day of week %d", d)
		}
	}
	if a.LeadTimeDays < 0 || a.LeadTimeDays > MaxLeadTimeDays {
		return fmt.Errorf("leadTimeDays must be between 0 and %d", MaxLeadTimeDays)
	}
	if a.AdvanceBookingLimitDays < 0 || a.AdvanceBookingLimitDays > MaxAdvanceBookingLimitDays {
		return fmt.Errorf("advanceBookingLimitDays must be between 0 and %d", MaxAdvanceBookingLimitDays)
	}
	if a.HasAdvanceBookingLimit() && a.AdvanceBookingLimitDays < a.LeadTimeDays {
		return fmt.Errorf("advanceBookingLimitDays must not be less than leadTimeDays")
	}
	return nil
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in advance bookings can be made
func (a *Availability) HasAdvanceBookingLimit() bool {
	return a.AdvanceBookingLimitDays > 0
}

// AllowsWeekday проверяет день недели. Пустой список означает "любой день"
func (a *Availability) AllowsWeekday(day time.Weekday) bool {
	if len(a.DaysOfWeek) == 0 {
		return true
	}
	for _, d := range a.DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}

// IsBlackout проверяет, что дата закрыта
func (a *Availability) IsBlackout(date time.Time) bool {
	for _, d := range a.BlackoutDates {
		if SameDay(d, date) {
			return true
		}
	}
	return false
}

// SlotContaining возвращает слот, в который целиком попадает окно
func (a *Availability) SlotContaining(start, end types.TimeString) (TimeSlot, bool) {
	for _, slot := range a.TimeSlots {
		if slot.Contains(start, end) {
			return slot, true
		}
	}
	return TimeSlot{}, false
}

// ChefAvailability сохранённая доступность шефа для выездных услуг
type ChefAvailability struct {
	ChefID int64
	Availability
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DateOnly обнуляет время, оставляя дату в UTC
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay проверяет, что две даты относятся к одному дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DaysBetween количество календарных дней от from до to
func DaysBetween(from, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)).Hours() / 24)
}
