package domain

// ViewState состояние дашборда в рамках сессии: поиск, фильтр по дате, страница.
// Все изменения идут через переходы Set*, каждый переход явно сбрасывает страницу.
type ViewState struct {
	Search     string     `json:"search"`
	DateFilter DateFilter `json:"dateFilter"`
	Page       int        `json:"page"`
	Generation uint64     `json:"generation"` // поколение списка бронирований, на котором была выбрана страница
}

// NewViewState начальное состояние
func NewViewState() ViewState {
	return ViewState{
		DateFilter: DateFilter{Type: DateFilterSingle},
		Page:       FirstPage,
	}
}

// SetSearch меняет строку поиска и сбрасывает страницу на первую
func (s ViewState) SetSearch(search string) ViewState {
	if search == s.Search {
		return s
	}
	s.Search = search
	s.Page = FirstPage
	return s
}

// SetDateFilter меняет фильтр по дате и сбрасывает страницу на первую
func (s ViewState) SetDateFilter(f DateFilter) ViewState {
	if f == s.DateFilter {
		return s
	}
	s.DateFilter = f
	s.Page = FirstPage
	return s
}

// SetPage меняет текущую страницу, ограничение сверху делает пагинатор
func (s ViewState) SetPage(page int) ViewState {
	if page < FirstPage {
		page = FirstPage
	}
	s.Page = page
	return s
}

// Observe фиксирует поколение списка; новый список сбрасывает страницу на первую
func (s ViewState) Observe(generation uint64) ViewState {
	if generation == s.Generation {
		return s
	}
	s.Generation = generation
	s.Page = FirstPage
	return s
}
