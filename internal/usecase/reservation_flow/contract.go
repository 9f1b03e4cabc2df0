package reservation_flow

import (
	"context"

	"github.com/m04kA/keystone-front/internal/domain"
	"github.com/m04kA/keystone-front/internal/usecase/get_available_slots"
)

// SlotLoader источник слотов темы на дату
type SlotLoader interface {
	Execute(ctx context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error)
}

// BackendClient интерфейс клиента бэкенда
type BackendClient interface {
	CreateReservation(ctx context.Context, r domain.NewReservation) (*domain.CreatedReservation, error)
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
