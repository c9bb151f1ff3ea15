package domain

import "time"

// StatusLogEntry запись журнала смены статусов
type StatusLogEntry struct {
	ID         int64         `json:"id"`
	BookingRef string        `json:"bookingRef"` // documentId или числовой id
	Status     BookingStatus `json:"status"`
	Actor      string        `json:"actor"`
	CreatedAt  time.Time     `json:"createdAt"`
}

// StatusLogFilter фильтр журнала
type StatusLogFilter struct {
	BookingRef *string
	Limit      uint64
	Offset     uint64
}
