package export_bookings

import "errors"

var (
	// ErrInvalidInput возвращается без идентификатора сессии
	ErrInvalidInput = errors.New("export_bookings: invalid input data")

	// ErrSessionNotFound возвращается, когда сессии нет или она истекла
	ErrSessionNotFound = errors.New("export_bookings: session not found")

	// ErrInternal возвращается при ошибках чтения сессии или записи файла
	ErrInternal = errors.New("export_bookings: internal error")
)
