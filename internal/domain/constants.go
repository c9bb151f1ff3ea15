package domain

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Значения по умолчанию для отображения бронирований
const (
	Placeholder          = "-"
	DefaultClientName    = "Cliente"
	DefaultCompanionName = "Companion"
	EllipsisLabel        = "..."
)

// Значения по умолчанию для дашборда
const (
	DefaultPageSize = 5
	FirstPage       = 1
)
