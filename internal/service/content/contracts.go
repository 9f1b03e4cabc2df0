package content

import (
	"context"

	"github.com/m04kA/keystone-front/internal/domain"
)

// BackendClient интерфейс клиента бэкенда
type BackendClient interface {
	GetNoticeBoard(ctx context.Context) (*domain.NoticeBoard, error)
	CreateNotice(ctx context.Context, n domain.Notice) error
	CreateFaq(ctx context.Context, f domain.Faq) error
	GetLocations(ctx context.Context) ([]domain.Location, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
