package admin_update_reservation

import (
	"context"

	"github.com/m04kA/keystone-front/internal/domain"
)

type AdminService interface {
	Update(ctx context.Context, id int64, update domain.AdminReservationUpdate) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
