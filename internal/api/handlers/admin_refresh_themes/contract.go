package admin_refresh_themes

import "context"

type ThemeCatalog interface {
	Refresh(ctx context.Context) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
