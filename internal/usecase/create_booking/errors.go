package create_booking

import "errors"

var (
	// ErrChefNotFound возвращается, когда шеф не найден в каталоге
	ErrChefNotFound = errors.New("create_booking: chef not found")

	// ErrChefInactive возвращается, когда шеф не принимает бронирования
	ErrChefInactive = errors.New("create_booking: chef is not accepting bookings")

	// ErrMenuNotFound возвращается, когда меню не найдено у шефа
	ErrMenuNotFound = errors.New("create_booking: menu not found")

	// ErrServiceNotOffered возвращается, когда шеф не оказывает этот тип услуги
	ErrServiceNotOffered = errors.New("create_booking: chef does not offer this service type")

	// ErrForbidden возвращается, когда бронировать пытается не клиент
	ErrForbidden = errors.New("create_booking: only clients can create bookings")

	// ErrBusy возвращается, когда не удалось пройти сериализацию за отведённые попытки
	ErrBusy = errors.New("create_booking: chef schedule is busy, try again")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
