package get_theme

import (
	"context"

	"github.com/m04kA/keystone-front/internal/domain"
)

type ThemeCatalog interface {
	Get(ctx context.Context, themeID int64) (*domain.Theme, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
