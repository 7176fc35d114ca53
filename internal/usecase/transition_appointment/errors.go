package transition_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда визит не найден
	ErrAppointmentNotFound = errors.New("transition_appointment: appointment not found")

	// ErrAccessDenied возвращается, когда актор не участник визита
	ErrAccessDenied = errors.New("transition_appointment: access denied")

	// ErrBusy возвращается, когда визит изменялся параллельно дольше бюджета попыток
	ErrBusy = errors.New("transition_appointment: appointment is being modified, try again")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("transition_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("transition_appointment: internal error")
)
