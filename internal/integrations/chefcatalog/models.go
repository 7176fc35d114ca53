package chefcatalog

import "github.com/m04kA/SMC-ChefReservationService/internal/domain"

// Chef модель шефа из каталога
type Chef struct {
	ID           int64    `json:"id"`
	UserID       int64    `json:"user_id"`
	HourlyRate   float64  `json:"hourly_rate"`
	ServiceTypes []string `json:"service_types"`
	CuisineTypes []string `json:"cuisine_types"`
	IsActive     bool     `json:"is_active"`
}

// Menu модель меню из каталога
type Menu struct {
	ID        int64    `json:"id"`
	ChefID    int64    `json:"chef_id"`
	Type      string   `json:"type"` // forfait, horaire
	Price     float64  `json:"price"`
	MinGuests int      `json:"min_guests"`
	MaxGuests int      `json:"max_guests"`
	Courses   []string `json:"courses"`
}

// ToDomain конвертирует шефа каталога в доменную модель
func (c *Chef) ToDomain() *domain.Chef {
	serviceTypes := make([]domain.ServiceType, 0, len(c.ServiceTypes))
	for _, st := range c.ServiceTypes {
		serviceTypes = append(serviceTypes, domain.ServiceType(st))
	}
	return &domain.Chef{
		ID:           c.ID,
		UserID:       c.UserID,
		HourlyRate:   c.HourlyRate,
		ServiceTypes: serviceTypes,
		CuisineTypes: c.CuisineTypes,
		IsActive:     c.IsActive,
	}
}

// ToDomain конвертирует меню каталога в доменную модель
func (m *Menu) ToDomain() *domain.Menu {
	return &domain.Menu{
		ID:        m.ID,
		ChefID:    m.ChefID,
		Type:      domain.MenuType(m.Type),
		Price:     m.Price,
		MinGuests: m.MinGuests,
		MaxGuests: m.MaxGuests,
		Courses:   m.Courses,
	}
}
