package availability

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
)

// Columns колонки правил доступности, общие для chef_availability и chef_home_locations
var Columns = []string{
	"days_of_week",
	"time_slots",
	"lead_time_days",
	"advance_booking_limit_days",
	"blackout_dates",
}

// Encode возвращает значения для Columns в том же порядке
func Encode(a domain.Availability) ([]interface{}, error) {
	days := make([]int64, len(a.DaysOfWeek))
	for i, d := range a.DaysOfWeek {
		days[i] = int64(d)
	}

	slots := a.TimeSlots
	if slots == nil {
		slots = []domain.TimeSlot{}
	}
	slotsJSON, err := json.Marshal(slots)
	if err != nil {
		return nil, fmt.Errorf("%w: time slots: %v", ErrEncode, err)
	}

	blackout := make([]string, len(a.BlackoutDates))
	for i, d := range a.BlackoutDates {
		blackout[i] = d.Format(domain.DateFormat)
	}

	return []interface{}{
		pq.Array(days),
		string(slotsJSON),
		a.LeadTimeDays,
		a.AdvanceBookingLimitDays,
		pq.Array(blackout),
	}, nil
}

// Row приёмник для сканирования Columns
type Row struct {
	DaysOfWeek              pq.Int64Array
	TimeSlots               []byte
	LeadTimeDays            int
	AdvanceBookingLimitDays int
	BlackoutDates           pq.StringArray
}

// Dest указатели для rows.Scan в порядке Columns
func (r *Row) Dest() []interface{} {
	return []interface{}{
		&r.DaysOfWeek,
		&r.TimeSlots,
		&r.LeadTimeDays,
		&r.AdvanceBookingLimitDays,
		&r.BlackoutDates,
	}
}

// Decode собирает domain.Availability из отсканированной строки
func (r *Row) Decode() (domain.Availability, error) {
	a := domain.Availability{
		LeadTimeDays:            r.LeadTimeDays,
		AdvanceBookingLimitDays: r.AdvanceBookingLimitDays,
	}

	for _, d := range r.DaysOfWeek {
		a.DaysOfWeek = append(a.DaysOfWeek, time.Weekday(d))
	}

	if len(r.TimeSlots) > 0 {
		if err := json.Unmarshal(r.TimeSlots, &a.TimeSlots); err != nil {
			return domain.Availability{}, fmt.Errorf("decode time slots: %w", err)
		}
	}

	for _, s := range r.BlackoutDates {
		// DATE[] приходит как YYYY-MM-DD
		d, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			return domain.Availability{}, fmt.Errorf("decode blackout date %q: %w", s, err)
		}
		a.BlackoutDates = append(a.BlackoutDates, d)
	}

	return a, nil
}
