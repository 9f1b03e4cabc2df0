package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const timeLayout = "15:04"

var (
	// ErrInvalidTimeString возвращается, если строка не в формате HH:MM
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOverflow возвращается, если результат выходит за пределы суток
	ErrTimeOverflow = errors.New("time string overflows the day")
)

// TimeString время суток в формате "HH:MM" (24 часа, без даты и часового пояса)
type TimeString string

// NewTimeString возвращает время суток из time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит "HH:MM" или "HH:MM:SS" (формат LocalTime бэкенда)
// и нормализует к "HH:MM"
func NewTimeStringFromString(s string) (TimeString, error) {
	if len(s) == len("15:04:05") {
		s = s[:len(timeLayout)]
	}

	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	return NewTimeString(t), nil
}

// String возвращает строковое представление
func (ts TimeString) String() string {
	return string(ts)
}

// IsZero true, если время не задано
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate проверяет формат
func (ts TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(ts)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return nil
}

// Minutes количество минут от начала суток
func (ts TimeString) Minutes() (int, error) {
	t, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return t.Hour()*60 + t.Minute(), nil
}

// AddMinutes сдвигает время на n минут в пределах одних суток
func (ts TimeString) AddMinutes(n int) (TimeString, error) {
	m, err := ts.Minutes()
	if err != nil {
		return "", err
	}

	total := m + n
	if total < 0 || total >= 24*60 {
		return "", ErrTimeOverflow
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// Compare сравнивает два времени: -1, 0 или 1.
// Некорректные значения считаются меньше любых корректных.
func (ts TimeString) Compare(other TimeString) int {
	a, errA := ts.Minutes()
	b, errB := other.Minutes()

	switch {
	case errA != nil && errB != nil:
		return 0
	case errA != nil:
		return -1
	case errB != nil:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// IsBefore true, если ts строго раньше other
func (ts TimeString) IsBefore(other TimeString) bool {
	return ts.Compare(other) < 0
}

// IsAfter true, если ts строго позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	return ts.Compare(other) > 0
}

// UnmarshalJSON принимает "HH:MM" и "HH:MM:SS"
func (ts *TimeString) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if raw == "" {
		*ts = ""
		return nil
	}

	parsed, err := NewTimeStringFromString(raw)
	if err != nil {
		return err
	}

	*ts = parsed
	return nil
}
