package domain

// Default configuration values
const (
	DefaultLeadTimeDays            = 1
	DefaultAdvanceBookingLimitDays = 0 // 0 = unlimited
	DefaultDepositPercent          = 30
	DefaultDayStart                = "08:00"
	DefaultDayEnd                  = "23:00"
)

// Business validation constants
const (
	MinGuests                   = 1
	MaxGuests                   = 500
	MaxLeadTimeDays             = 90
	MaxAdvanceBookingLimitDays  = 730 // 2 years
	MinDurationMinutes          = 30
	MaxDurationMinutes          = 16 * 60
	MaxMessageLength            = 1000
	MaxReviewLength             = 2000
	MaxResolutionLength         = 4000
	MaxCancellationReasonLength = 500
	MinRating                   = 1
	MaxRating                   = 5
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BookingTerminalStatuses статусы бронирований, которые не занимают время шефа
var BookingTerminalStatuses = []BookingStatus{
	BookingStatusCancelled,
	BookingStatusCompleted,
}

// AppointmentReleasedStatuses статусы визитов, которые не занимают время шефа
var AppointmentReleasedStatuses = []AppointmentStatus{
	AppointmentStatusDeclined,
	AppointmentStatusCancelled,
}
