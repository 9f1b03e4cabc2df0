package admin_get_reservation

import (
	"context"

	"github.com/m04kA/keystone-front/internal/domain"
)

type AdminService interface {
	Get(ctx context.Context, id int64) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
