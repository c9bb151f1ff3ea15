package update_booking_status

import "encoding/json"

// Request модель запроса на смену статуса
type Request struct {
	ID     string // documentId или числовой id строкой
	Status string // pending, confirmed или cancelled
	Actor  string // кто меняет статус (для журнала)
}

// Response модель ответа
type Response struct {
	Success bool
	Booking json.RawMessage // обновленное бронирование в формате CMS
}
