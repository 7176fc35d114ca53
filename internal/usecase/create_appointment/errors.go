package create_appointment

import "errors"

var (
	// ErrLocationNotFound возвращается, когда площадка не найдена
	ErrLocationNotFound = errors.New("create_appointment: location not found")

	// ErrForbidden возвращается, когда визит запрашивает не клиент
	ErrForbidden = errors.New("create_appointment: only clients can request appointments")

	// ErrBusy возвращается, когда не удалось пройти сериализацию за отведённые попытки
	ErrBusy = errors.New("create_appointment: chef schedule is busy, try again")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
