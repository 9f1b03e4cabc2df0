package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/keystone-front/internal/domain"
)

// BackendClient интерфейс клиента бэкенда
type BackendClient interface {
	GetAvailableTimesWithGracefulDegradation(ctx context.Context, themeID int64, date string) ([]domain.TimeSlot, error)
}

// Metrics учет деградировавших запросов
type Metrics interface {
	DegradedLookup()
}

type nopMetrics struct{}

func (nopMetrics) DegradedLookup() {}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
