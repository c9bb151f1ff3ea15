package get_dashboard

import (
	"errors"
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
	"github.com/m04kA/SMC-CompanionAdmin/internal/service/bookings/models"
	getDashboard "github.com/m04kA/SMC-CompanionAdmin/internal/usecase/get_dashboard"
)

var errInvalidPage = errors.New("page must be an integer")

// DashboardResponse HTTP response model
type DashboardResponse struct {
	Bookings     []domain.DisplayBooking `json:"bookings"`
	Pagination   PaginationResponse      `json:"pagination"`
	Filters      FiltersResponse         `json:"filters"`
	Stats        models.Stats            `json:"stats"`
	Notification *domain.Notification    `json:"notification"`
}

type PaginationResponse struct {
	Page      int               `json:"page"`
	PageCount int               `json:"pageCount"`
	PageSize  int               `json:"pageSize"`
	Total     int               `json:"total"`
	Window    domain.PageWindow `json:"window"`
	Labels    []string          `json:"labels"`
}

type FiltersResponse struct {
	Search     string            `json:"search"`
	DateFilter domain.DateFilter `json:"dateFilter"`
}

// ToUseCaseRequest разбирает query: search, dateType, startDate, endDate, page.
// Отсутствующий параметр не меняет сохраненное состояние.
func ToUseCaseRequest(sessionID string, q url.Values) (*getDashboard.Request, error) {
	req := &getDashboard.Request{SessionID: sessionID}

	if q.Has("search") {
		search := q.Get("search")
		req.Search = &search
	}

	if q.Has("dateType") || q.Has("startDate") || q.Has("endDate") {
		df := domain.DateFilter{
			Type:      domain.DateFilterType(q.Get("dateType")),
			StartDate: q.Get("startDate"),
			EndDate:   q.Get("endDate"),
		}
		if df.Type == "" {
			df.Type = domain.DateFilterSingle
		}
		if df.Type == domain.DateFilterSingle {
			df.EndDate = ""
		}
		req.DateFilter = &df
	}

	if q.Has("page") {
		page, err := strconv.Atoi(q.Get("page"))
		if err != nil {
			return nil, errInvalidPage
		}
		req.Page = &page
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDashboard.Response) *DashboardResponse {
	bookings := resp.Bookings
	if bookings == nil {
		bookings = []domain.DisplayBooking{}
	}
	return &DashboardResponse{
		Bookings: bookings,
		Pagination: PaginationResponse{
			Page:      resp.Pagination.Page,
			PageCount: resp.Pagination.PageCount,
			PageSize:  resp.Pagination.PageSize,
			Total:     resp.Pagination.Total,
			Window:    resp.Pagination.Window,
			Labels:    resp.Pagination.Window.Labels(),
		},
		Filters: FiltersResponse{
			Search:     resp.View.Search,
			DateFilter: resp.View.DateFilter,
		},
		Stats:        resp.Stats,
		Notification: resp.Notification,
	}
}
