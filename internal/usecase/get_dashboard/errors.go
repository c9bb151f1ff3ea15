package get_dashboard

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном фильтре или странице
	ErrInvalidInput = errors.New("get_dashboard: invalid input data")

	// ErrSessionNotFound возвращается, когда сессии нет или она истекла
	ErrSessionNotFound = errors.New("get_dashboard: session not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_dashboard: internal error")
)
