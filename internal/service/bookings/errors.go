package bookings

import "errors"

var (
	// ErrInvalidStatus возвращается при попытке установить неканоничный статус
	ErrInvalidStatus = errors.New("bookings service: invalid booking status")

	// ErrInvalidInput возвращается при пустом идентификаторе бронирования
	ErrInvalidInput = errors.New("bookings service: invalid input data")

	// ErrFetch возвращается, когда не удалось загрузить список бронирований
	ErrFetch = errors.New("bookings service: failed to fetch bookings")

	// ErrStatusUpdate возвращается, когда CMS не приняла смену статуса
	ErrStatusUpdate = errors.New("bookings service: failed to update booking status")
)
