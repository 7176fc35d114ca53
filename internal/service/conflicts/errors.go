package conflicts

import "errors"

var (
	// ErrInternal возвращается при ошибках чтения расписания
	ErrInternal = errors.New("conflicts: internal error")

	// ErrNoTransaction возвращается, если блокировку шефа пытаются взять вне транзакции
	ErrNoTransaction = errors.New("conflicts: chef lock requires a transaction")
)
