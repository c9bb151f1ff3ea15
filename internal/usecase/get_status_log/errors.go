package get_status_log

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных limit/offset
	ErrInvalidInput = errors.New("get_status_log: invalid input data")

	// ErrDisabled возвращается, если журнал не подключен (database.enabled = false)
	ErrDisabled = errors.New("get_status_log: status log is disabled")

	// ErrInternal возвращается при ошибках чтения журнала
	ErrInternal = errors.New("get_status_log: internal error")
)
