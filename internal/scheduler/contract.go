package scheduler

import (
	"context"

	"github.com/m04kA/SMC-CompanionAdmin/internal/service/bookings/models"
)

// BookingsRefresher перезагрузка списка бронирований
type BookingsRefresher interface {
	Refresh(ctx context.Context) (int, error)
	Snapshot() models.Snapshot
}

// Broadcaster уведомление клиентов дашборда о новом списке
type Broadcaster interface {
	BroadcastBookingsRefreshed(loaded int, generation uint64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
