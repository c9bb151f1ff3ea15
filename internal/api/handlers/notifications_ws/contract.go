package notifications_ws

import (
	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
	ws "github.com/m04kA/SMC-CompanionAdmin/internal/websocket"
)

type Hub interface {
	Register(client *ws.Client) bool
	Unregister(client *ws.Client)
}

type NotificationSource interface {
	Current() *domain.Notification
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
