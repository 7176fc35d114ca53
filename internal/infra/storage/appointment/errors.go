package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда визит не найден
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrVersionConflict возвращается, когда визит изменили параллельно
	ErrVersionConflict = errors.New("appointment.repository: version conflict")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
