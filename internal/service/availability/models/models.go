package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	"github.com/m04kA/SMC-ChefReservationService/pkg/types"
)

// TimeSlotDTO окно доступности "HH:MM"-"HH:MM"
type TimeSlotDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AvailabilityRequest правила доступности шефа или площадки
type AvailabilityRequest struct {
	DaysOfWeek              []int         `json:"daysOfWeek"` // 0 = воскресенье
	TimeSlots               []TimeSlotDTO `json:"timeSlots"`
	LeadTimeDays            int           `json:"leadTimeDays"`
	AdvanceBookingLimitDays int           `json:"advanceBookingLimitDays"` // 0 = без ограничений
	BlackoutDates           []string      `json:"blackoutDates,omitempty"` // "2025-12-31"
}

// ToDomain разбирает время и даты. Инварианты проверяет domain.Availability.Validate
func (r *AvailabilityRequest) ToDomain() (domain.Availability, error) {
	var a domain.Availability
	if r == nil {
		return a, fmt.Errorf("availability is required")
	}

	for _, d := range r.DaysOfWeek {
		if d < 0 || d > 6 {
			return a, fmt.Errorf("invalid day of week %d", d)
		}
		a.DaysOfWeek = append(a.DaysOfWeek, time.Weekday(d))
	}

	for _, slot := range r.TimeSlots {
		start, err := types.NewTimeStringFromString(slot.Start)
		if err != nil {
			return a, err
		}
		end, err := types.NewTimeStringFromString(slot.End)
		if err != nil {
			return a, err
		}
		a.TimeSlots = append(a.TimeSlots, domain.TimeSlot{Start: start, End: end})
	}

	for _, s := range r.BlackoutDates {
		date, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			return a, fmt.Errorf("invalid blackout date %q", s)
		}
		a.BlackoutDates = append(a.BlackoutDates, date)
	}

	a.LeadTimeDays = r.LeadTimeDays
	a.AdvanceBookingLimitDays = r.AdvanceBookingLimitDays
	return a, nil
}

// AvailabilityResponse правила доступности в ответе
type AvailabilityResponse struct {
	DaysOfWeek              []int         `json:"daysOfWeek"`
	TimeSlots               []TimeSlotDTO `json:"timeSlots"`
	LeadTimeDays            int           `json:"leadTimeDays"`
	AdvanceBookingLimitDays int           `json:"advanceBookingLimitDays"`
	BlackoutDates           []string      `json:"blackoutDates"`
}

// ChefAvailabilityResponse доступность шефа
type ChefAvailabilityResponse struct {
	ChefID    int64 `json:"chefId"`
	IsDefault bool  `json:"isDefault"` // шеф ещё не настраивал доступность
	AvailabilityResponse
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// FromDomain конвертирует правила доступности в DTO
func FromDomain(a domain.Availability) AvailabilityResponse {
	resp := AvailabilityResponse{
		DaysOfWeek:              make([]int, 0, len(a.DaysOfWeek)),
		TimeSlots:               make([]TimeSlotDTO, 0, len(a.TimeSlots)),
		LeadTimeDays:            a.LeadTimeDays,
		AdvanceBookingLimitDays: a.AdvanceBookingLimitDays,
		BlackoutDates:           make([]string, 0, len(a.BlackoutDates)),
	}
	for _, d := range a.DaysOfWeek {
		resp.DaysOfWeek = append(resp.DaysOfWeek, int(d))
	}
	for _, slot := range a.TimeSlots {
		resp.TimeSlots = append(resp.TimeSlots, TimeSlotDTO{Start: slot.Start.String(), End: slot.End.String()})
	}
	for _, d := range a.BlackoutDates {
		resp.BlackoutDates = append(resp.BlackoutDates, d.Format(domain.DateFormat))
	}
	return resp
}

// FromDomainAvailability конвертирует доступность шефа в DTO
func FromDomainAvailability(a *domain.ChefAvailability, isDefault bool) *ChefAvailabilityResponse {
	resp := &ChefAvailabilityResponse{
		ChefID:               a.ChefID,
		IsDefault:            isDefault,
		AvailabilityResponse: FromDomain(a.Availability),
	}
	if !a.UpdatedAt.IsZero() {
		updatedAt := a.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}
