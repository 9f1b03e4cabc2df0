package confirmation_flow

import (
	"context"

	"github.com/m04kA/keystone-front/internal/domain"
)

// BackendClient интерфейс клиента бэкенда
type BackendClient interface {
	ConfirmReservation(ctx context.Context, reservationID, name, phone string) (*domain.Reservation, error)
	CancelReservation(ctx context.Context, reservationID int64) (int64, error)
	SaveRefundAccount(ctx context.Context, cancelID int64, account domain.RefundAccount) error
}

// Metrics учет переходов состояний
type Metrics interface {
	FlowTransition(flow, from, to string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type nopMetrics struct{}

func (nopMetrics) FlowTransition(string, string, string) {}
