package catalog

import "errors"

var (
	// ErrThemeNotFound возвращается, когда тема не найдена
	ErrThemeNotFound = errors.New("theme not found")

	// ErrUnavailable возвращается, когда бэкенд недоступен
	ErrUnavailable = errors.New("catalog: backend unavailable")
)
