package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOverflow возвращается, когда результат выходит за пределы суток
	ErrTimeOverflow = errors.New("time string overflows the day")
)

// TimeString время дня в формате HH:MM (24 часа)
type TimeString string

// NewTimeStringFromString разбирает строку HH:MM
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeString берёт часы и минуты из time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// FromMinutes строит TimeString из количества минут от начала суток
func FromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= MinutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOverflow, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// Validate проверяет формат HH:MM
func (t TimeString) Validate() error {
	s := string(t)
	if len(s) != 5 || s[2] != ':' {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
	}
	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	minutes := int(s[3]-'0')*10 + int(s[4]-'0')
	if hours > 23 || minutes > 59 {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return nil
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String реализует fmt.Stringer
func (t TimeString) String() string {
	return string(t)
}

// Minutes возвращает количество минут от начала суток
func (t TimeString) Minutes() (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	s := string(t)
	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	minutes := int(s[3]-'0')*10 + int(s[4]-'0')
	return hours*60 + minutes, nil
}

// AddMinutes прибавляет минуты, результат должен остаться в пределах суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	current, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return FromMinutes(current + minutes)
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(t)
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

// Scan реализует sql.Scanner. PostgreSQL TIME приходит как "HH:MM:SS"
func (t *TimeString) Scan(src interface{}) error {
	var s string
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeString, src)
	}

	if len(s) > 5 {
		s = s[:5]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
