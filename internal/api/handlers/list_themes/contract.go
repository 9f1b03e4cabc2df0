package list_themes

import (
	"context"

	"github.com/m04kA/keystone-front/internal/domain"
)

type ThemeCatalog interface {
	List(ctx context.Context) ([]domain.Theme, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
