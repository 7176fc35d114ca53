package paymentservice

import "errors"

var (
	// ErrPaymentDeclined возвращается, когда провайдер отклонил операцию
	ErrPaymentDeclined = errors.New("paymentservice: payment declined")

	// ErrIntentNotFound возвращается, когда платёжное намерение не найдено
	ErrIntentNotFound = errors.New("paymentservice: intent not found")

	// ErrUnavailable возвращается при сетевых ошибках, таймаутах и 5xx
	ErrUnavailable = errors.New("paymentservice: provider unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paymentservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("paymentservice client: invalid response")
)
