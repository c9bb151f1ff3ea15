package companions

import "errors"

var (
	// ErrInvalidInput возвращается при пустом documentId или некорректной пагинации
	ErrInvalidInput = errors.New("companions service: invalid input data")

	// ErrNotFound возвращается, если компаньон или тексты не найдены
	ErrNotFound = errors.New("companions service: not found")

	// ErrUpstream возвращается при недоступности CMS
	ErrUpstream = errors.New("companions service: cms unavailable")
)
