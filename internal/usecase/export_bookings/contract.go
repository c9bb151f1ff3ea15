package export_bookings

import (
	"context"
	"io"

	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
	"github.com/m04kA/SMC-CompanionAdmin/internal/service/bookings/models"
)

// SessionService состояние дашборда в сессии
type SessionService interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
}

// BookingsService текущий список бронирований
type BookingsService interface {
	Snapshot() models.Snapshot
}

// WriteFunc сериализует список в файл выгрузки
type WriteFunc func(w io.Writer, list []domain.DisplayBooking) error

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
