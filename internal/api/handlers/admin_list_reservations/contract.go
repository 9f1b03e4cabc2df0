package admin_list_reservations

import (
	"context"

	"github.com/m04kA/keystone-front/internal/domain"
	"github.com/m04kA/keystone-front/internal/service/admin/models"
)

type AdminService interface {
	List(ctx context.Context, filter models.ListFilter) (*domain.AdminReservationPage, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
