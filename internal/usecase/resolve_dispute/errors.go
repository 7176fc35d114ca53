package resolve_dispute

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("resolve_dispute: booking not found")

	// ErrForbidden возвращается, когда спор пытается разрешить не администратор
	ErrForbidden = errors.New("resolve_dispute: only admins can resolve disputes")

	// ErrNotDisputed возвращается, когда бронирование не в статусе disputed
	ErrNotDisputed = errors.New("resolve_dispute: booking is not disputed")

	// ErrRefundExceedsCaptured возвращается, когда возврат больше захваченной суммы
	ErrRefundExceedsCaptured = errors.New("resolve_dispute: refund exceeds captured amount")

	// ErrPaymentProvider возвращается, когда возврат не прошёл. Спор остаётся открытым
	ErrPaymentProvider = errors.New("resolve_dispute: payment provider error")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("resolve_dispute: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("resolve_dispute: internal error")
)
