package reservation_flow

import (
	"context"

	"github.com/m04kA/keystone-front/internal/domain"
	reservationFlow "github.com/m04kA/keystone-front/internal/usecase/reservation_flow"
)

type ThemeCatalog interface {
	Get(ctx context.Context, themeID int64) (*domain.Theme, error)
}

// FlowStore живые сценарии бронирования по идентификатору сессии
type FlowStore interface {
	Put(flow *reservationFlow.Flow) string
	Get(id string) (*reservationFlow.Flow, error)
	Delete(id string) bool
}

// FlowFactory создает сценарий для темы
type FlowFactory func(theme domain.Theme) (*reservationFlow.Flow, error)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
