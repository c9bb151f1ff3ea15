package domain

import "errors"

// DateFilterType тип фильтра по дате
type DateFilterType string

const (
	DateFilterSingle DateFilterType = "single"
	DateFilterRange  DateFilterType = "range"
)

// ErrInvalidDateFilter возвращается при некорректном фильтре по дате
var ErrInvalidDateFilter = errors.New("domain: invalid date filter")

// DateFilter фильтр по дате бронирования.
// StartDate/EndDate в формате YYYY-MM-DD, пустая StartDate - фильтр выключен.
type DateFilter struct {
	Type      DateFilterType `json:"type"`
	StartDate string         `json:"startDate"`
	EndDate   string         `json:"endDate"`
}

// IsActive true, если задана начальная дата
func (f DateFilter) IsActive() bool {
	return f.StartDate != ""
}

// Validate проверяет тип фильтра
func (f DateFilter) Validate() error {
	switch f.Type {
	case DateFilterSingle, DateFilterRange:
		return nil
	default:
		return ErrInvalidDateFilter
	}
}
