package ptr

// Ptr возвращает указатель на копию значения
func Ptr[T any](v T) *T {
	return &v
}

// Deref возвращает значение по указателю или нулевое значение для nil
func Deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
