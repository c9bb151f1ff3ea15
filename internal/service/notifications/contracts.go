package notifications

import "github.com/m04kA/SMC-CompanionAdmin/internal/domain"

// Broadcaster доставка уведомлений подключенным клиентам
type Broadcaster interface {
	BroadcastNotification(n domain.Notification)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
