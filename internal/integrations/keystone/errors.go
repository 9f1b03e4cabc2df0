package keystone

import "errors"

var (
	// ErrNotFound бэкенд ответил 404
	ErrNotFound = errors.New("keystone client: not found")

	// ErrConflict бэкенд ответил 409 (например, слот уже занят)
	ErrConflict = errors.New("keystone client: conflict")

	// ErrRejected бэкенд отклонил запрос как некорректный (400/422)
	ErrRejected = errors.New("keystone client: request rejected")

	// ErrUnauthorized бэкенд не принял учетные данные (401/403)
	ErrUnauthorized = errors.New("keystone client: unauthorized")

	// ErrUnavailable сетевая ошибка, таймаут или 5xx
	ErrUnavailable = errors.New("keystone client: backend unavailable")

	// ErrInvalidResponse ответ не удалось разобрать
	ErrInvalidResponse = errors.New("keystone client: invalid response")

	// ErrInternal ошибка при формировании запроса
	ErrInternal = errors.New("keystone client: internal error")

	// ErrServiceDegraded возвращается при graceful degradation:
	// бэкенд недоступен, вызывающая сторона должна показать пустой результат
	ErrServiceDegraded = errors.New("keystone backend unavailable: graceful degradation applied")
)
