package models

import "github.com/m04kA/SMC-CompanionAdmin/internal/domain"

// Page страница отфильтрованного списка
type Page struct {
	Items     []domain.DisplayBooking
	Page      int
	PageCount int
	PageSize  int
	Total     int
}

// Stats сводка по всему (неотфильтрованному) списку бронирований
type Stats struct {
	TotalBookings    int     `json:"totalBookings"`
	PendingBookings  int     `json:"pendingBookings"`
	ActiveCompanions int     `json:"activeCompanions"`
	Revenue          float64 `json:"revenue"`
	RevenueFormatted string  `json:"revenueFormatted"`
	TodayBookings    int     `json:"todayBookings"`
}

// Snapshot текущий список бронирований и его поколение
type Snapshot struct {
	Bookings   []domain.DisplayBooking
	Generation uint64
}
