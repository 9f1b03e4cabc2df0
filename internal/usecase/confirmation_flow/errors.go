package confirmation_flow

import "errors"

var (
	// ErrNotFound бронь не найдена; какое поле не совпало, не сообщаем
	ErrNotFound = errors.New("reservation not found")

	// ErrConfirmationRequired отмена без подтверждения
	ErrConfirmationRequired = errors.New("cancellation must be confirmed first")

	// ErrAlreadyCancelled бронь уже отменена
	ErrAlreadyCancelled = errors.New("reservation is already cancelled")

	// ErrInvalidTransition операция недопустима в текущем состоянии
	ErrInvalidTransition = errors.New("confirmation flow: invalid state transition")

	// ErrRequestInProgress предыдущий запрос еще не завершился
	ErrRequestInProgress = errors.New("confirmation flow: request already in progress")

	// ErrStaleResponse сценарий был сброшен, пока шел запрос
	ErrStaleResponse = errors.New("confirmation flow: flow was reset during request")

	// ErrRejected бэкенд отклонил запрос
	ErrRejected = errors.New("confirmation flow: rejected by backend")

	// ErrUnavailable бэкенд недоступен, можно повторить
	ErrUnavailable = errors.New("confirmation flow: backend unavailable")
)
