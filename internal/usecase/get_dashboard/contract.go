package get_dashboard

import (
	"context"

	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
	"github.com/m04kA/SMC-CompanionAdmin/internal/service/bookings/models"
)

// SessionService состояние дашборда в сессии
type SessionService interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	SaveView(ctx context.Context, id string, view domain.ViewState) error
}

// BookingsService текущий список бронирований
type BookingsService interface {
	Snapshot() models.Snapshot
	Stats(list []domain.DisplayBooking) models.Stats
}

// NotificationSource активное уведомление
type NotificationSource interface {
	Current() *domain.Notification
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
