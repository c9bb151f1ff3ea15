package websocket

import "github.com/m04kA/SMC-CompanionAdmin/internal/domain"

// EventBroadcaster рассылает события дашборда через hub
type EventBroadcaster struct {
	hub *Hub
}

// NewEventBroadcaster создает broadcaster
func NewEventBroadcaster(hub *Hub) *EventBroadcaster {
	return &EventBroadcaster{hub: hub}
}

// BroadcastNotification уведомление о смене статуса или ошибке
func (b *EventBroadcaster) BroadcastNotification(n domain.Notification) {
	b.broadcast(NewMessage(TypeNotification, NotificationPayload{
		Message:   n.Message,
		Type:      n.Type,
		ExpiresAt: n.ExpiresAt,
	}))
}

// BroadcastBookingsRefreshed список перезагружен, клиентам стоит перечитать дашборд
func (b *EventBroadcaster) BroadcastBookingsRefreshed(loaded int, generation uint64) {
	b.broadcast(NewMessage(TypeBookingsRefreshed, BookingsRefreshedPayload{
		Loaded:     loaded,
		Generation: generation,
	}))
}

func (b *EventBroadcaster) broadcast(msg Message) {
	data, err := msg.JSON()
	if err != nil {
		b.hub.log.Error("Failed to marshal websocket message type=%s: %v", msg.Type, err)
		return
	}
	b.hub.Broadcast(data)
}
