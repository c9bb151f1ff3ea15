package middleware

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
)

// SessionGetter чтение сессии администратора
type SessionGetter interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
}

// HTTPRecorder учет HTTP запросов в метриках
type HTTPRecorder interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
