package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	createBooking "github.com/m04kA/SMC-ChefReservationService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ChefReservationService/pkg/types"
)

// LocationRequest адрес мероприятия
type LocationRequest struct {
	Address string `json:"address"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ChefID          int64           `json:"chefId"`
	MenuID          *int64          `json:"menuId,omitempty"`
	ServiceType     string          `json:"serviceType"`
	EventDate       string          `json:"eventDate"` // "2025-10-15"
	StartTime       string          `json:"startTime"` // "19:00"
	DurationMinutes int             `json:"durationMinutes"`
	Guests          int             `json:"guests"`
	Location        LocationRequest `json:"location"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(actor domain.Actor) (*createBooking.Request, error) {
	eventDate, err := time.Parse(domain.DateFormat, r.EventDate)
	if err != nil {
		return nil, errInvalidDate
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, errInvalidTime
	}

	return &createBooking.Request{
		Actor:           actor,
		ChefID:          r.ChefID,
		MenuID:          r.MenuID,
		ServiceType:     domain.ServiceType(r.ServiceType),
		Date:            eventDate,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		Guests:          r.Guests,
		Location: domain.Address{
			Address: r.Location.Address,
			City:    r.Location.City,
			ZipCode: r.Location.ZipCode,
		},
	}, nil
}
