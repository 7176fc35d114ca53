package domain

import "errors"

// RejectionCode машиночитаемый код бизнес-отказа
type RejectionCode string

const (
	CodeOutOfCapacity             RejectionCode = "OUT_OF_CAPACITY"
	CodeLeadTimeViolation         RejectionCode = "LEAD_TIME_VIOLATION"
	CodeOutsideAvailabilityWindow RejectionCode = "OUTSIDE_AVAILABILITY_WINDOW"
	CodeBlackoutDate              RejectionCode = "BLACKOUT_DATE"
	CodeInvalidTimeRange          RejectionCode = "INVALID_TIME_RANGE"
	CodeLocationInactive          RejectionCode = "LOCATION_INACTIVE"
	CodeConflictDetected          RejectionCode = "CONFLICT_DETECTED"
)

// RejectionError типизированный отказ в резервации
type RejectionError struct {
	Code    RejectionCode
	Message string
}

func (e *RejectionError) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return string(e.Code) + ": " + e.Message
}

// Is сравнивает отказы по коду, чтобы работал errors.Is(err, domain.ErrBlackoutDate)
func (e *RejectionError) Is(target error) bool {
	var t *RejectionError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// Reject создает отказ с кодом и сообщением
func Reject(code RejectionCode, message string) *RejectionError {
	return &RejectionError{Code: code, Message: message}
}

var (
	ErrOutOfCapacity             = &RejectionError{Code: CodeOutOfCapacity}
	ErrLeadTimeViolation         = &RejectionError{Code: CodeLeadTimeViolation}
	ErrOutsideAvailabilityWindow = &RejectionError{Code: CodeOutsideAvailabilityWindow}
	ErrBlackoutDate              = &RejectionError{Code: CodeBlackoutDate}
	ErrInvalidTimeRange          = &RejectionError{Code: CodeInvalidTimeRange}
	ErrLocationInactive          = &RejectionError{Code: CodeLocationInactive}
	ErrConflictDetected          = &RejectionError{Code: CodeConflictDetected}
)

// AsRejection достаёт RejectionError из цепочки ошибок
func AsRejection(err error) (*RejectionError, bool) {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}
