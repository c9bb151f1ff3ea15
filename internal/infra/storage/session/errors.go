package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессии нет или истек TTL
	ErrSessionNotFound = errors.New("session.repository: session not found")

	// ErrEncode возвращается при ошибке сериализации сессии
	ErrEncode = errors.New("session.repository: failed to encode session")

	// ErrDecode возвращается при ошибке разбора сохраненной сессии
	ErrDecode = errors.New("session.repository: failed to decode session")

	// ErrStorage возвращается при ошибке Redis
	ErrStorage = errors.New("session.repository: storage error")
)
