package admin_create_faq

import (
	"context"

	"github.com/m04kA/keystone-front/internal/domain"
)

type ContentService interface {
	CreateFaq(ctx context.Context, f domain.Faq) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
