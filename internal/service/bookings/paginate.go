package bookings

import (
	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
	"github.com/m04kA/SMC-CompanionAdmin/internal/service/bookings/models"
)

// Paginate режет список на страницы фиксированного размера.
// Количество страниц не меньше 1, страница ограничивается диапазоном [1, PageCount].
func Paginate(list []domain.DisplayBooking, page, pageSize int) models.Page {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}

	total := len(list)
	pageCount := (total + pageSize - 1) / pageSize
	if pageCount < 1 {
		pageCount = 1
	}

	page = clamp(page, domain.FirstPage, pageCount)

	from := (page - 1) * pageSize
	to := from + pageSize
	if from > total {
		from = total
	}
	if to > total {
		to = total
	}

	return models.Page{
		Items:     list[from:to],
		Page:      page,
		PageCount: pageCount,
		PageSize:  pageSize,
		Total:     total,
	}
}

// PageWindow номера страниц для навигации: якоря 1 и последняя, окно вокруг текущей, многоточия
func PageWindow(current, pageCount int) domain.PageWindow {
	if pageCount < 1 {
		pageCount = 1
	}
	current = clamp(current, domain.FirstPage, pageCount)

	w := domain.PageWindow{
		Current:          current,
		PageCount:        pageCount,
		ShowFirst:        true,
		ShowLast:         pageCount > 1,
		LeadingEllipsis:  current > 3 && pageCount > 4,
		TrailingEllipsis: current < pageCount-2 && pageCount > 4,
	}

	var from, to int
	switch {
	case pageCount <= 4:
		from, to = 2, pageCount-1
	case current <= 3:
		from, to = 2, 4
	case current >= pageCount-2:
		from, to = pageCount-3, pageCount-1
	default:
		from, to = current-1, current+1
	}

	w.Interior = make([]int, 0, 3)
	for p := from; p <= to; p++ {
		if p > 1 && p < pageCount {
			w.Interior = append(w.Interior, p)
		}
	}

	return w
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
