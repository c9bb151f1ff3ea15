package update_booking_status

import (
	"context"
	"encoding/json"

	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
)

// CMSClient обновление бронирования в CMS
type CMSClient interface {
	UpdateBookingStatus(ctx context.Context, id string, status string) (json.RawMessage, error)
}

// StatusLogRepository журнал смены статусов
type StatusLogRepository interface {
	Append(ctx context.Context, entry *domain.StatusLogEntry) (*domain.StatusLogEntry, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
