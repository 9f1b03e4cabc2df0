package get_locations

import (
	"context"

	"github.com/m04kA/keystone-front/internal/domain"
)

type ContentService interface {
	Locations(ctx context.Context) ([]domain.Location, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
