package content

import "errors"

var (
	// ErrUnavailable бэкенд недоступен или отказал
	ErrUnavailable = errors.New("content: backend unavailable")

	// ErrRender не удалось отрендерить markdown
	ErrRender = errors.New("content: markdown render failed")
)
