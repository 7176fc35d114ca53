package chefcatalog

import "errors"

var (
	// ErrChefNotFound возвращается, когда шеф не найден в каталоге
	ErrChefNotFound = errors.New("chef not found")

	// ErrMenuNotFound возвращается, когда меню не найдено у шефа
	ErrMenuNotFound = errors.New("menu not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("chefcatalog client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("chefcatalog client: invalid response")
)
