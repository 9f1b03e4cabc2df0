package confirmation_flow

import (
	confirmationFlow "github.com/m04kA/keystone-front/internal/usecase/confirmation_flow"
)

// FlowStore живые сценарии проверки брони по идентификатору сессии
type FlowStore interface {
	Put(flow *confirmationFlow.Flow) string
	Get(id string) (*confirmationFlow.Flow, error)
	Delete(id string) bool
}

// FlowFactory создает сценарий в состоянии поиска
type FlowFactory func() *confirmationFlow.Flow

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
