package get_available_slots

import "errors"

var (
	// ErrThemeNotFound возвращается, когда тема не найдена на бэкенде
	ErrThemeNotFound = errors.New("theme not found")

	// ErrInvalidDate возвращается, если дата не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid date")

	// ErrDateInPast возвращается для дат раньше сегодняшней
	ErrDateInPast = errors.New("date is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")
)
