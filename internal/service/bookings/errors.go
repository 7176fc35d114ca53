package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrChefNotFound возвращается, когда шеф не найден в каталоге
	ErrChefNotFound = errors.New("bookings: chef not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("bookings: access denied")

	// ErrCannotReview возвращается, если бронирование не завершено или отзыв уже оставлен
	ErrCannotReview = errors.New("bookings: booking cannot be reviewed")

	// ErrBusy возвращается, если бронирование параллельно изменили
	ErrBusy = errors.New("bookings: booking is being modified, retry later")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
