package admin_create_notice

import (
	"context"

	"github.com/m04kA/keystone-front/internal/domain"
)

type ContentService interface {
	CreateNotice(ctx context.Context, n domain.Notice) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
