package models

import (
	"time"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	availabilityModels "github.com/m04kA/SMC-ChefReservationService/internal/service/availability/models"
)

// DefaultCurrency валюта площадки, если шеф её не указал
const DefaultCurrency = "EUR"

// CapacityDTO допустимое количество гостей
type CapacityDTO struct {
	MinGuests int `json:"minGuests"`
	MaxGuests int `json:"maxGuests"`
}

// PricingDTO цены площадки
type PricingDTO struct {
	BasePrice     float64  `json:"basePrice"`
	PricePerGuest *float64 `json:"pricePerGuest,omitempty"`
	Currency      string   `json:"currency,omitempty"`
}

// LocationRequest запрос на создание или изменение площадки
type LocationRequest struct {
	Address      string                                 `json:"address"`
	City         string                                 `json:"city"`
	ZipCode      string                                 `json:"zipCode"`
	Capacity     CapacityDTO                            `json:"capacity"`
	Pricing      PricingDTO                             `json:"pricing"`
	Availability availabilityModels.AvailabilityRequest `json:"availability"`
}

// ToDomain конвертирует запрос в domain модель и проверяет инварианты
func (r *LocationRequest) ToDomain() (*domain.ChefHomeLocation, error) {
	rules, err := r.Availability.ToDomain()
	if err != nil {
		return nil, err
	}

	currency := r.Pricing.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	loc := &domain.ChefHomeLocation{
		Address: r.Address,
		City:    r.City,
		ZipCode: r.ZipCode,
		Capacity: domain.Capacity{
			MinGuests: r.Capacity.MinGuests,
			MaxGuests: r.Capacity.MaxGuests,
		},
		Pricing: domain.Pricing{
			BasePrice:     r.Pricing.BasePrice,
			PricePerGuest: r.Pricing.PricePerGuest,
			Currency:      currency,
		},
		Availability: rules,
	}

	if err := loc.Validate(); err != nil {
		return nil, err
	}
	return loc, nil
}

// LocationResponse ответ с данными площадки
type LocationResponse struct {
	ID           int64                                   `json:"id"`
	ChefID       int64                                   `json:"chefId"`
	Address      string                                  `json:"address"`
	City         string                                  `json:"city"`
	ZipCode      string                                  `json:"zipCode"`
	Capacity     CapacityDTO                             `json:"capacity"`
	Pricing      PricingDTO                              `json:"pricing"`
	Availability availabilityModels.AvailabilityResponse `json:"availability"`
	IsActive     bool                                    `json:"isActive"`
	CreatedAt    time.Time                               `json:"createdAt"`
	UpdatedAt    time.Time                               `json:"updatedAt"`
}

// LocationListResponse ответ со списком площадок
type LocationListResponse struct {
	Locations []LocationResponse `json:"locations"`
}

// FromDomainLocation конвертирует domain модель в DTO
func FromDomainLocation(l *domain.ChefHomeLocation) *LocationResponse {
	if l == nil {
		return nil
	}
	return &LocationResponse{
		ID:      l.ID,
		ChefID:  l.ChefID,
		Address: l.Address,
		City:    l.City,
		ZipCode: l.ZipCode,
		Capacity: CapacityDTO{
			MinGuests: l.Capacity.MinGuests,
			MaxGuests: l.Capacity.MaxGuests,
		},
		Pricing: PricingDTO{
			BasePrice:     l.Pricing.BasePrice,
			PricePerGuest: l.Pricing.PricePerGuest,
			Currency:      l.Pricing.Currency,
		},
		Availability: availabilityModels.FromDomain(l.Availability),
		IsActive:     l.IsActive,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

// FromDomainLocationList конвертирует список domain моделей в DTO
func FromDomainLocationList(locations []*domain.ChefHomeLocation) *LocationListResponse {
	resp := &LocationListResponse{
		Locations: make([]LocationResponse, 0, len(locations)),
	}
	for _, l := range locations {
		if r := FromDomainLocation(l); r != nil {
			resp.Locations = append(resp.Locations, *r)
		}
	}
	return resp
}
