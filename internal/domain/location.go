package domain

import (
	"fmt"
	"time"
)

// Capacity допустимое количество гостей
type Capacity struct {
	MinGuests int
	MaxGuests int
}

// Allows проверяет min <= guests <= max
func (c Capacity) Allows(guests int) bool {
	return guests >= c.MinGuests && guests <= c.MaxGuests
}

// Pricing цены площадки. PricePerGuest необязательна: nil означает 0
type Pricing struct {
	BasePrice     float64
	PricePerGuest *float64
	Currency      string
}

// PerGuest цена за гостя с нулевым значением по умолчанию
func (p Pricing) PerGuest() float64 {
	if p.PricePerGuest == nil {
		return 0
	}
	return *p.PricePerGuest
}

// Quote стоимость визита для указанного количества гостей
func (p Pricing) Quote(guests int) float64 {
	return p.BasePrice + p.PerGuest()*float64(guests)
}

// ChefHomeLocation площадка шефа, где он принимает гостей
type ChefHomeLocation struct {
	ID           int64
	ChefID       int64
	Address      string
	City         string
	ZipCode      string
	Capacity     Capacity
	Pricing      Pricing
	Availability Availability
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate проверяет инварианты площадки
func (l *ChefHomeLocation) Validate() error {
	if l.Address == "" || l.City == "" || l.ZipCode == "" {
		return fmt.Errorf("address, city and zipCode are required")
	}
	if l.Capacity.MinGuests < MinGuests {
		return fmt.Errorf("capacity.minGuests must be at least %d", MinGuests)
	}
	if l.Capacity.MaxGuests < l.Capacity.MinGuests {
		return fmt.Errorf("capacity.maxGuests must be greater than or equal to capacity.minGuests")
	}
	if l.Capacity.MaxGuests > MaxGuests {
		return fmt.Errorf("capacity.maxGuests must not exceed %d", MaxGuests)
	}
	if l.Pricing.BasePrice < 0 || l.Pricing.PerGuest() < 0 {
		return fmt.Errorf("prices must not be negative")
	}
	if l.Pricing.Currency != "" && len(l.Pricing.Currency) != 3 {
		return fmt.Errorf("currency must be an ISO 4217 code")
	}
	return l.Availability.Validate()
}
