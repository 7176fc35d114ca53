package create_payment_intent

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("create_payment_intent: booking not found")

	// ErrAccessDenied возвращается, когда платит не клиент бронирования
	ErrAccessDenied = errors.New("create_payment_intent: access denied")

	// ErrNotPayable возвращается, когда бронирование в статусе, который нельзя оплачивать
	ErrNotPayable = errors.New("create_payment_intent: booking cannot be paid in its current status")

	// ErrNothingToPay возвращается, когда запрошенная часть уже оплачена
	ErrNothingToPay = errors.New("create_payment_intent: nothing left to pay")

	// ErrPaymentProvider возвращается, когда провайдер не создал намерение
	ErrPaymentProvider = errors.New("create_payment_intent: payment provider error")

	// ErrBusy возвращается, когда бронирование изменялось параллельно дольше бюджета попыток
	ErrBusy = errors.New("create_payment_intent: booking is being modified, try again")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_payment_intent: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_payment_intent: internal error")
)
