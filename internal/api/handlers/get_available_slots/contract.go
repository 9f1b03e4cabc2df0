package get_available_slots

import (
	"context"

	getAvailableSlots "github.com/m04kA/keystone-front/internal/usecase/get_available_slots"
)

// ThemeSlotsUseCase слоты одной темы на дату: по возрастанию времени, без дублей
type ThemeSlotsUseCase interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
