package get_available_slots

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	"github.com/m04kA/SMC-ChefReservationService/pkg/types"
)

type interval struct {
	start int
	end   int
}

// isBookableDay проверяет дневные правила площадки: активность, день недели, blackout, lead time, горизонт
func isBookableDay(loc *domain.ChefHomeLocation, date, now time.Time) bool {
	a := loc.Availability
	if !loc.IsActive || !a.AllowsWeekday(date.Weekday()) || a.IsBlackout(date) {
		return false
	}
	days := domain.DaysBetween(now, date)
	if days < a.LeadTimeDays {
		return false
	}
	if a.HasAdvanceBookingLimit() && days > a.AdvanceBookingLimitDays {
		return false
	}
	return true
}

// freeSlots вычитает занятые окна из объявленных слотов.
// notBefore - минута, раньше которой интервалы не предлагаются (для сегодняшней даты)
func freeSlots(declared []domain.TimeSlot, occupied []domain.ReservationRef, notBefore int) ([]domain.AvailableSlot, error) {
	busy := make([]interval, 0, len(occupied))
	for _, ref := range occupied {
		start, err := ref.Window.Start.Minutes()
		if err != nil {
			return nil, err
		}
		end, err := ref.Window.End.Minutes()
		if err != nil {
			return nil, err
		}
		busy = append(busy, interval{start: start, end: end})
	}
	sort.Slice(busy, func(i, j int) bool { return busy[i].start < busy[j].start })

	slots := make([]interval, 0, len(declared))
	for _, s := range declared {
		start, err := s.Start.Minutes()
		if err != nil {
			return nil, err
		}
		end, err := s.End.Minutes()
		if err != nil {
			return nil, err
		}
		slots = append(slots, interval{start: start, end: end})
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].start < slots[j].start })

	result := make([]domain.AvailableSlot, 0)
	for _, slot := range slots {
		cursor := slot.start
		if cursor < notBefore {
			cursor = notBefore
		}
		for _, b := range busy {
			if cursor >= slot.end {
				break
			}
			if b.end <= cursor || b.start >= slot.end {
				continue
			}
			if b.start > cursor {
				free, err := toSlot(cursor, b.start)
				if err != nil {
					return nil, err
				}
				result = append(result, free)
			}
			if b.end > cursor {
				cursor = b.end
			}
		}
		if cursor < slot.end {
			free, err := toSlot(cursor, slot.end)
			if err != nil {
				return nil, err
			}
			result = append(result, free)
		}
	}
	return result, nil
}

func toSlot(start, end int) (domain.AvailableSlot, error) {
	s, err := types.FromMinutes(start)
	if err != nil {
		return domain.AvailableSlot{}, err
	}
	e, err := types.FromMinutes(end)
	if err != nil {
		return domain.AvailableSlot{}, err
	}
	return domain.AvailableSlot{Start: s, End: e}, nil
}

// currentMinute минута суток для сегодняшней даты, иначе 0
func currentMinute(date, now time.Time) int {
	if !domain.SameDay(date, now) {
		return 0
	}
	return now.Hour()*60 + now.Minute()
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	return domain.DateOnly(date).Before(domain.DateOnly(now))
}
