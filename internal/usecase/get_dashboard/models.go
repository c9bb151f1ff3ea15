package get_dashboard

import (
	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
	"github.com/m04kA/SMC-CompanionAdmin/internal/service/bookings/models"
)

// Request модель запроса дашборда.
// nil поля не меняют сохраненное состояние сессии.
type Request struct {
	SessionID  string
	Search     *string
	DateFilter *domain.DateFilter
	Page       *int
}

// Response модель ответа дашборда
type Response struct {
	Bookings     []domain.DisplayBooking
	Pagination   Pagination
	View         domain.ViewState
	Stats        models.Stats
	Notification *domain.Notification
}

// Pagination пагинация и окно страниц
type Pagination struct {
	Page      int
	PageCount int
	PageSize  int
	Total     int
	Window    domain.PageWindow
}
