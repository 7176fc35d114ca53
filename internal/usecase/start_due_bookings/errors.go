package start_due_bookings

import "errors"

// ErrInternal возвращается, если не удалось получить список бронирований
var ErrInternal = errors.New("start_due_bookings: internal error")
