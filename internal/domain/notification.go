package domain

import "time"

// NotificationType тип уведомления
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
)

// Notification короткоживущее уведомление для администратора
type Notification struct {
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	CreatedAt time.Time        `json:"createdAt"`
	ExpiresAt time.Time        `json:"expiresAt"`
}

// Expired true, если уведомление уже должно быть скрыто
func (n *Notification) Expired(now time.Time) bool {
	return !now.Before(n.ExpiresAt)
}
