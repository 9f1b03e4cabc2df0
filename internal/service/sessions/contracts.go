package sessions

// Metrics учет активных сессий
type Metrics interface {
	SetActiveSessions(kind string, n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type nopMetrics struct{}

func (nopMetrics) SetActiveSessions(string, int) {}
