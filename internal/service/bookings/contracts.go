package bookings

import (
	"context"

	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
	"github.com/m04kA/SMC-CompanionAdmin/internal/integrations/cms"
)

// BookingsFetcher источник сырых бронирований
type BookingsFetcher interface {
	ListBookings(ctx context.Context) ([]cms.Booking, error)
}

// StatusUpdater отправляет смену статуса бронирования в CMS.
// id - documentId или числовой id строкой.
type StatusUpdater interface {
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, actor string) error
}

// Notifier публикует уведомления администратору
type Notifier interface {
	Publish(message string, notificationType domain.NotificationType) domain.Notification
}

// RefreshBroadcaster уведомляет подключенных администраторов о новом списке
type RefreshBroadcaster interface {
	BroadcastBookingsRefreshed(loaded int, generation uint64)
}

// PanelTextsProvider тексты панели, из которых берутся уведомления о смене статуса
type PanelTextsProvider interface {
	GetPanelTexts(ctx context.Context, locale string) (*cms.PanelTexts, error)
}

// Recorder метрики сервиса
type Recorder interface {
	ObserveRefresh(loaded int, err error)
	ObserveStatusChange(status, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
