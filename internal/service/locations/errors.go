package locations

import "errors"

var (
	// ErrLocationNotFound возвращается, когда площадка не найдена
	ErrLocationNotFound = errors.New("locations: location not found")

	// ErrChefNotFound возвращается, когда шеф не найден в каталоге
	ErrChefNotFound = errors.New("locations: chef not found")

	// ErrAccessDenied возвращается, когда пользователь не владеет площадкой
	ErrAccessDenied = errors.New("locations: access denied")

	// ErrInvalidInput возвращается при некорректных данных площадки
	ErrInvalidInput = errors.New("locations: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("locations: internal error")
)
