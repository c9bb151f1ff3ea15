package get_status_log

import "github.com/m04kA/SMC-CompanionAdmin/internal/domain"

// Request модель запроса журнала
type Request struct {
	BookingRef string
	Limit      int
	Offset     int
}

// Response записи журнала, новые первыми
type Response struct {
	Entries []*domain.StatusLogEntry
}
