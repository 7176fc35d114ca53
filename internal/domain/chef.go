package domain

// MenuType тип тарификации меню
type MenuType string

const (
	MenuTypeFlatRate MenuType = "forfait" // фиксированная цена за мероприятие
	MenuTypeHourly   MenuType = "horaire" // почасовая оплата
)

// Chef профиль шефа из каталога
type Chef struct {
	ID           int64
	UserID       int64 // аккаунт-владелец
	HourlyRate   float64
	ServiceTypes []ServiceType
	CuisineTypes []string
	IsActive     bool
}

// OwnedBy проверяет, что шеф принадлежит пользователю
func (c *Chef) OwnedBy(userID int64) bool {
	return c.UserID == userID
}

// OffersService проверяет, что шеф оказывает указанный тип услуги
func (c *Chef) OffersService(st ServiceType) bool {
	if len(c.ServiceTypes) == 0 {
		return true
	}
	for _, s := range c.ServiceTypes {
		if s == st {
			return true
		}
	}
	return false
}

// Menu меню шефа
type Menu struct {
	ID        int64
	ChefID    int64
	Type      MenuType
	Price     float64
	MinGuests int
	MaxGuests int
	Courses   []string
}
