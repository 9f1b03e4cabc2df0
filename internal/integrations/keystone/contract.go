package keystone

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics учет запросов к бэкенду
type Metrics interface {
	ObserveBackend(operation, outcome string, d time.Duration)
}

type nopMetrics struct{}

func (nopMetrics) ObserveBackend(string, string, time.Duration) {}
