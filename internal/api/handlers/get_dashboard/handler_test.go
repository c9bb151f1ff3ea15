package get_dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CompanionAdmin/internal/api/middleware"
	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
	getDashboard "github.com/m04kA/SMC-CompanionAdmin/internal/usecase/get_dashboard"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got *getDashboard.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getDashboard.Request) (*getDashboard.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &getDashboard.Response{
		Bookings: []domain.DisplayBooking{{ID: 1, ClientName: "Ana"}},
		Pagination: getDashboard.Pagination{
			Page: 1, PageCount: 1, PageSize: 5, Total: 1,
			Window: domain.PageWindow{Current: 1, PageCount: 1, Interior: []int{1}},
		},
		View: domain.NewViewState(),
	}, nil
}

func adminRequest(target string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	sess := &domain.Session{ID: "s1", User: domain.User{ID: 1, UserType: domain.UserTypeAdmin}}
	return r.WithContext(middleware.WithSession(r.Context(), sess))
}

func TestHandle_ReturnsDashboard(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, adminRequest("/api/v1/admin/bookings?search=ana&page=2"))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, "s1", uc.got.SessionID)
	require.NotNil(t, uc.got.Search)
	assert.Equal(t, "ana", *uc.got.Search)
	require.NotNil(t, uc.got.Page)
	assert.Equal(t, 2, *uc.got.Page)
	assert.Nil(t, uc.got.DateFilter)

	var body DashboardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Bookings, 1)
	assert.Equal(t, []string{"1"}, body.Pagination.Labels)
}

func TestHandle_InvalidPage(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})
	rec := httptest.NewRecorder()
	h.Handle(rec, adminRequest("/api/v1/admin/bookings?page=abc"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UseCaseErrors(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{getDashboard.ErrInvalidInput, http.StatusBadRequest},
		{getDashboard.ErrSessionNotFound, http.StatusUnauthorized},
		{getDashboard.ErrInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		h := NewHandler(&fakeUseCase{err: tc.err}, nopLogger{})
		rec := httptest.NewRecorder()
		h.Handle(rec, adminRequest("/api/v1/admin/bookings"))
		assert.Equal(t, tc.status, rec.Code, tc.err.Error())
	}
}

func TestHandle_NoSessionInContext(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestToUseCaseRequest_DateFilter(t *testing.T) {
	req, err := ToUseCaseRequest("s1", url.Values{"startDate": {"2024-03-01"}, "endDate": {"2024-03-05"}})
	require.NoError(t, err)
	require.NotNil(t, req.DateFilter)
	assert.Equal(t, domain.DateFilter{Type: domain.DateFilterSingle, StartDate: "2024-03-01"}, *req.DateFilter)

	req, err = ToUseCaseRequest("s1", url.Values{"dateType": {"range"}, "startDate": {"2024-03-01"}, "endDate": {"2024-03-05"}})
	require.NoError(t, err)
	assert.Equal(t, domain.DateFilter{Type: domain.DateFilterRange, StartDate: "2024-03-01", EndDate: "2024-03-05"}, *req.DateFilter)
}
