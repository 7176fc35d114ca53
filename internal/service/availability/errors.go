package availability

import "errors"

var (
	// ErrChefNotFound возвращается, когда шеф не найден в каталоге
	ErrChefNotFound = errors.New("availability: chef not found")

	// ErrAccessDenied возвращается, когда пользователь не владеет профилем шефа
	ErrAccessDenied = errors.New("availability: access denied")

	// ErrInvalidInput возвращается при некорректных правилах доступности
	ErrInvalidInput = errors.New("availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)
