package start_due_bookings

// Response итог одного прохода
type Response struct {
	Started int
	Skipped int // ещё не началось по времени
	Failed  int
}
