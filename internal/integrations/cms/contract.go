package cms

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Recorder метрики обращений к CMS
type Recorder interface {
	ObserveCMSRequest(operation, result string, duration time.Duration)
}
