package catalog

import (
	"context"

	"github.com/m04kA/keystone-front/internal/domain"
)

// BackendClient интерфейс клиента бэкенда
type BackendClient interface {
	ListThemes(ctx context.Context) ([]domain.Theme, error)
	GetTheme(ctx context.Context, themeID int64) (*domain.Theme, error)
}

// ThemeCache интерфейс кэша тем
type ThemeCache interface {
	GetAll(ctx context.Context) ([]domain.Theme, error)
	SetAll(ctx context.Context, themes []domain.Theme) error
	Get(ctx context.Context, themeID int64) (*domain.Theme, error)
	Set(ctx context.Context, theme domain.Theme) error
	Invalidate(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
