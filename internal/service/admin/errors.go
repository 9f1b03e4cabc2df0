package admin

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrInvalidTransition отмененную бронь нельзя вернуть в WAIT/CONFIRMED
	ErrInvalidTransition = errors.New("cancelled reservation cannot be reopened")

	// ErrInvalidStatus неизвестный статус в фильтре
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrUnavailable бэкенд недоступен или отказал
	ErrUnavailable = errors.New("admin: backend unavailable")
)
