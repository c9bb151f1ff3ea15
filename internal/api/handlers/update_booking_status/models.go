package update_booking_status

import (
	"bytes"
	"encoding/json"
	"strconv"

	updateBookingStatus "github.com/m04kA/SMC-CompanionAdmin/internal/usecase/update_booking_status"
)

const webhookActor = "cal-webhook"

// BookingID id бронирования: строка (documentId) или число.
// Числовой 0 считается отсутствующим id.
type BookingID string

func (id *BookingID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = BookingID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if f, err := n.Float64(); err == nil && f == 0 {
		*id = ""
		return nil
	}
	if i, err := n.Int64(); err == nil {
		*id = BookingID(strconv.FormatInt(i, 10))
		return nil
	}
	*id = BookingID(n.String())
	return nil
}

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	ID     BookingID `json:"id"`
	Status string    `json:"status"`
}

// UpdateStatusResponse HTTP response model
type UpdateStatusResponse struct {
	Success bool            `json:"success"`
	Booking json.RawMessage `json:"booking"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateStatusRequest) ToUseCaseRequest() *updateBookingStatus.Request {
	return &updateBookingStatus.Request{
		ID:     string(r.ID),
		Status: r.Status,
		Actor:  webhookActor,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBookingStatus.Response) *UpdateStatusResponse {
	booking := resp.Booking
	if len(booking) == 0 {
		booking = json.RawMessage("null")
	}
	return &UpdateStatusResponse{
		Success: resp.Success,
		Booking: booking,
	}
}
