package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ChefReservationService/internal/domain"
	"github.com/m04kA/SMC-ChefReservationService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Actor           domain.Actor       // Кто бронирует (client или b2b)
	ChefID          int64              // ID шефа
	MenuID          *int64             // ID меню (опционально)
	ServiceType     domain.ServiceType // Тип услуги
	Date            time.Time          // Дата мероприятия (без времени)
	StartTime       types.TimeString   // Время начала, например "19:00"
	DurationMinutes int                // Длительность в минутах
	Guests          int                // Количество гостей
	Location        domain.Address     // Адрес клиента
}
