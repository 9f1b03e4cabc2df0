package sessions

import "errors"

var (
	// ErrSessionNotFound сессии нет или она истекла
	ErrSessionNotFound = errors.New("flow session not found or expired")
)
