package bookings

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
)

// Filter возвращает бронирования, подходящие и под текстовый поиск, и под фильтр по дате.
// Пересчитывается на каждый запрос, исходный список не меняется.
func Filter(list []domain.DisplayBooking, search string, df domain.DateFilter) []domain.DisplayBooking {
	needle := strings.ToLower(search)
	matchDate := dateMatcher(df)

	result := make([]domain.DisplayBooking, 0, len(list))
	for _, b := range list {
		if matchesSearch(b, needle) && matchDate(b.Date) {
			result = append(result, b)
		}
	}
	return result
}

// matchesSearch подстрока без учета регистра в имени клиента, компаньона или номере брони
func matchesSearch(b domain.DisplayBooking, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(b.ClientName), needle) ||
		strings.Contains(strings.ToLower(b.CompanionName), needle) ||
		strings.Contains(strings.ToLower(b.BookingRef), needle)
}

// dateMatcher сравнение по календарным дням.
// Запись без даты или с неразбираемой датой не проходит активный фильтр.
func dateMatcher(df domain.DateFilter) func(string) bool {
	if !df.IsActive() {
		return func(string) bool { return true }
	}

	start, err := parseDay(df.StartDate)
	if err != nil {
		return func(string) bool { return false }
	}

	var end *time.Time
	if df.Type == domain.DateFilterRange && df.EndDate != "" {
		e, err := parseDay(df.EndDate)
		if err != nil {
			return func(string) bool { return false }
		}
		end = &e
	}

	return func(date string) bool {
		day, err := parseDay(date)
		if err != nil {
			return false
		}

		switch {
		case df.Type == domain.DateFilterSingle:
			return day.Equal(start)
		case end != nil:
			return !day.Before(start) && !day.After(*end)
		default:
			return !day.Before(start)
		}
	}
}

func parseDay(s string) (time.Time, error) {
	return time.Parse(domain.DateFormat, s)
}
