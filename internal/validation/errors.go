package validation

import (
	"errors"
	"fmt"
)

// ErrInvalidField базовая ошибка для всех ошибок валидации формы
var ErrInvalidField = errors.New("validation: invalid field")

// Error ошибка поля формы с готовым сообщением для пользователя
type Error struct {
	Field   string
	Message string
}

// NewError создает ошибку поля
func NewError(field, message string) *Error {
	return &Error{Field: field, Message: message}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *Error) Unwrap() error {
	return ErrInvalidField
}

// UserMessage достает сообщение для пользователя, если err ошибка валидации
func UserMessage(err error) (string, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr.Message, true
	}
	return "", false
}
