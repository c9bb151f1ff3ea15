package update_booking_status

import "errors"

var (
	// ErrInvalidInput возвращается, когда не передан id или статус
	ErrInvalidInput = errors.New("update_booking_status: ID and status are required")

	// ErrInvalidStatus возвращается, когда статус не pending, confirmed или cancelled
	ErrInvalidStatus = errors.New("update_booking_status: invalid status")

	// ErrCMSUpdate возвращается, когда CMS не приняла обновление
	ErrCMSUpdate = errors.New("update_booking_status: failed to update booking in cms")
)
