package cms

import "errors"

var (
	// ErrNotFound возвращается, когда CMS ответила 404
	ErrNotFound = errors.New("cms client: resource not found")

	// ErrUnauthorized возвращается при 401/403 от CMS (неверный логин или токен)
	ErrUnauthorized = errors.New("cms client: unauthorized")

	// ErrBadRequest возвращается при 400 от CMS
	ErrBadRequest = errors.New("cms client: bad request")

	// ErrInternal возвращается при внутренних ошибках клиента (сеть, построение запроса)
	ErrInternal = errors.New("cms client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от CMS
	// (неожиданный статус-код, невалидный JSON, отсутствие обязательных полей)
	ErrInvalidResponse = errors.New("cms client: invalid response")
)
