package completion

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder учет обращений к сервису генерации (*metrics.Metrics)
type MetricsRecorder interface {
	ObserveCompletion(outcome string)
}
