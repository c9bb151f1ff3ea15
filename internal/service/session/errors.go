package session

import "errors"

var (
	// ErrInvalidInput возвращается при пустом логине, пароле или email
	ErrInvalidInput = errors.New("session service: invalid input data")

	// ErrInvalidCredentials возвращается, когда CMS отклонила логин или токен
	ErrInvalidCredentials = errors.New("session service: invalid credentials")

	// ErrSessionNotFound возвращается, когда сессии нет или она истекла
	ErrSessionNotFound = errors.New("session service: session not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("session service: internal error")
)
