package admin

import (
	"context"

	"github.com/m04kA/keystone-front/internal/domain"
)

// BackendClient интерфейс клиента бэкенда
type BackendClient interface {
	ListAdminReservations(ctx context.Context, page, size int, keyword string) (*domain.AdminReservationPage, error)
	ListCancelledReservations(ctx context.Context, keyword string) ([]domain.Reservation, error)
	UpdateAdminReservation(ctx context.Context, reservationID int64, update domain.AdminReservationUpdate) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
