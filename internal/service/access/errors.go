package access

import "errors"

var (
	// ErrAccessDenied возвращается, когда у пользователя нет прав на резервацию
	ErrAccessDenied = errors.New("access: access denied")

	// ErrChefNotFound возвращается, когда шеф резервации не найден в каталоге
	ErrChefNotFound = errors.New("access: chef not found")

	// ErrInternal возвращается при ошибках обращения к каталогу
	ErrInternal = errors.New("access: internal error")
)
