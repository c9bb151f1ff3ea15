package get_status_log

import (
	"context"

	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
)

// StatusLogRepository чтение журнала смены статусов
type StatusLogRepository interface {
	List(ctx context.Context, filter domain.StatusLogFilter) ([]*domain.StatusLogEntry, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
