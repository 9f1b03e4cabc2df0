package get_notices

import (
	"context"

	"github.com/m04kA/keystone-front/internal/service/content/models"
)

type ContentService interface {
	Board(ctx context.Context) (*models.Board, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
