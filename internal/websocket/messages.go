package websocket

import (
	"encoding/json"
	"time"

	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
)

// MessageType тип сообщения
type MessageType string

const (
	TypeNotification      MessageType = "notification"
	TypeBookingsRefreshed MessageType = "bookings.refreshed"
)

// Message конверт сообщения
type Message struct {
	Type      MessageType `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   any         `json:"payload"`
}

// NewMessage создает сообщение с текущим временем
func NewMessage(msgType MessageType, payload any) Message {
	return Message{
		Type:      msgType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// JSON сериализует сообщение
func (m Message) JSON() ([]byte, error) {
	return json.Marshal(m)
}

// NotificationPayload уведомление для администратора
type NotificationPayload struct {
	Message   string                  `json:"message"`
	Type      domain.NotificationType `json:"type"`
	ExpiresAt time.Time               `json:"expiresAt"`
}

// BookingsRefreshedPayload список бронирований перезагружен
type BookingsRefreshedPayload struct {
	Loaded     int    `json:"loaded"`
	Generation uint64 `json:"generation"`
}
