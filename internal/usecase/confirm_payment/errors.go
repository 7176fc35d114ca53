package confirm_payment

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("confirm_payment: booking not found")

	// ErrAccessDenied возвращается, когда подтверждает не клиент бронирования
	ErrAccessDenied = errors.New("confirm_payment: access denied")

	// ErrNotPayable возвращается, когда бронирование в статусе, который нельзя оплачивать
	ErrNotPayable = errors.New("confirm_payment: booking cannot be paid in its current status")

	// ErrIntentMismatch возвращается, когда намерение не совпадает с сохранённым в бронировании
	ErrIntentMismatch = errors.New("confirm_payment: intent does not belong to this booking")

	// ErrPaymentProvider возвращается, когда провайдер не подтвердил платёж. Бронирование не меняется
	ErrPaymentProvider = errors.New("confirm_payment: payment provider error")

	// ErrBusy возвращается, когда бронирование изменялось параллельно дольше бюджета попыток
	ErrBusy = errors.New("confirm_payment: booking is being modified, try again")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_payment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_payment: internal error")
)
