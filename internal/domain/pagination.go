package domain

import "strconv"

// PageWindow набор номеров страниц для навигации.
// Первая и последняя страницы - якоря, между ними окно с многоточиями.
type PageWindow struct {
	Current          int   `json:"current"`
	PageCount        int   `json:"pageCount"`
	ShowFirst        bool  `json:"showFirst"`
	ShowLast         bool  `json:"showLast"`
	LeadingEllipsis  bool  `json:"leadingEllipsis"`
	Interior         []int `json:"interior"`
	TrailingEllipsis bool  `json:"trailingEllipsis"`
}

// Labels подписи в порядке отображения, например ["1", "...", "7", "8", "9", "10"]
func (w PageWindow) Labels() []string {
	labels := make([]string, 0, len(w.Interior)+4)

	if w.ShowFirst {
		labels = append(labels, "1")
	}
	if w.LeadingEllipsis {
		labels = append(labels, EllipsisLabel)
	}
	for _, p := range w.Interior {
		labels = append(labels, strconv.Itoa(p))
	}
	if w.TrailingEllipsis {
		labels = append(labels, EllipsisLabel)
	}
	if w.ShowLast {
		labels = append(labels, strconv.Itoa(w.PageCount))
	}

	return labels
}
