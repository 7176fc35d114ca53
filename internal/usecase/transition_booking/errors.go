package transition_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("transition_booking: booking not found")

	// ErrAccessDenied возвращается, когда актор не участник бронирования
	ErrAccessDenied = errors.New("transition_booking: access denied")

	// ErrTooEarlyToStart возвращается, когда дата мероприятия ещё не наступила
	ErrTooEarlyToStart = errors.New("transition_booking: event date has not been reached")

	// ErrPaymentProvider возвращается, когда возврат не прошёл. Бронирование не меняется
	ErrPaymentProvider = errors.New("transition_booking: payment provider error")

	// ErrBusy возвращается, когда бронирование изменялось параллельно дольше бюджета попыток
	ErrBusy = errors.New("transition_booking: booking is being modified, try again")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("transition_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("transition_booking: internal error")
)
