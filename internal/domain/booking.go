package domain

import "strconv"

// DisplayBooking нормализованное бронирование для дашборда.
// Создается нормализатором и после этого не изменяется.
type DisplayBooking struct {
	ID            int64         `json:"id"`
	DocumentID    string        `json:"documentId,omitempty"`
	ClientName    string        `json:"clientName"`
	CompanionName string        `json:"companionName"`
	Date          string        `json:"date"`     // "2024-03-01" или "-"
	Time          string        `json:"time"`     // "14:30" или "-"
	Duration      string        `json:"duration"` // "45min" или "-"
	Amount        string        `json:"amount"`   // "R$ 1.500" или "-"
	AmountValue   *float64      `json:"-"`
	Status        BookingStatus `json:"status"`
	ClientPhone   string        `json:"clientPhone"`
	CustomerEmail string        `json:"customerEmail"`
	BookingRef    string        `json:"bookingId"`
}

// Ref идентификаторы бронирования для мутаций
func (b *DisplayBooking) Ref() BookingRef {
	return BookingRef{ID: b.ID, DocumentID: b.DocumentID}
}

// BookingRef пара идентификаторов: числовой (fallback) и стабильный documentId (предпочтительный)
type BookingRef struct {
	ID         int64
	DocumentID string
}

// Identifier возвращает documentId, если он есть, иначе числовой id
func (r BookingRef) Identifier() string {
	if r.DocumentID != "" {
		return r.DocumentID
	}
	return strconv.FormatInt(r.ID, 10)
}

// IsZero true, если ни один идентификатор не задан
func (r BookingRef) IsZero() bool {
	return r.DocumentID == "" && r.ID <= 0
}

// ParseBookingRef разбирает идентификатор из URL: число - это id, иначе documentId
func ParseBookingRef(s string) BookingRef {
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return BookingRef{ID: id}
	}
	return BookingRef{DocumentID: s}
}
