package get_dashboard

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
	"github.com/m04kA/SMC-CompanionAdmin/internal/service/bookings/models"
	sessionService "github.com/m04kA/SMC-CompanionAdmin/internal/service/session"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSessions struct {
	sessions map[string]*domain.Session
	saves    int
}

func (f *fakeSessions) Get(_ context.Context, id string) (*domain.Session, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, sessionService.ErrSessionNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSessions) SaveView(_ context.Context, id string, view domain.ViewState) error {
	f.saves++
	f.sessions[id].View = view
	return nil
}

type fakeBookings struct {
	snapshot models.Snapshot
	// next подменяет список после первого чтения: перезагрузка посреди запроса
	next *models.Snapshot
}

func (f *fakeBookings) Snapshot() models.Snapshot {
	current := f.snapshot
	if f.next != nil {
		f.snapshot = *f.next
		f.next = nil
	}
	return current
}
func (f *fakeBookings) Stats(list []domain.DisplayBooking) models.Stats {
	return models.Stats{TotalBookings: len(list)}
}

type fakeNotifications struct {
	current *domain.Notification
}

func (f *fakeNotifications) Current() *domain.Notification { return f.current }

func makeBookings(n int) []domain.DisplayBooking {
	list := make([]domain.DisplayBooking, n)
	for i := range list {
		list[i] = domain.DisplayBooking{
			ID:            int64(i + 1),
			ClientName:    fmt.Sprintf("client-%02d", i+1),
			CompanionName: "Maria",
			Date:          "2024-03-01",
			BookingRef:    fmt.Sprintf("BK-%02d", i+1),
		}
	}
	return list
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func setup(n int) (*UseCase, *fakeSessions, *fakeBookings) {
	sessions := &fakeSessions{sessions: map[string]*domain.Session{
		"s1": {ID: "s1", User: domain.User{ID: 1, UserType: domain.UserTypeAdmin}, View: domain.NewViewState()},
	}}
	books := &fakeBookings{snapshot: models.Snapshot{Bookings: makeBookings(n), Generation: 1}}
	uc := NewUseCase(sessions, books, &fakeNotifications{}, 5, nopLogger{})
	return uc, sessions, books
}

func TestExecute_PaginatesWithWindow(t *testing.T) {
	uc, _, _ := setup(12)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "s1", Page: intPtr(3)})
	require.NoError(t, err)

	assert.Len(t, resp.Bookings, 2)
	assert.Equal(t, 3, resp.Pagination.Page)
	assert.Equal(t, 3, resp.Pagination.PageCount)
	assert.Equal(t, 12, resp.Pagination.Total)
	assert.Equal(t, []string{"1", "2", "3"}, resp.Pagination.Window.Labels())
	assert.Equal(t, 12, resp.Stats.TotalBookings)
}

func TestExecute_StatsFromSameSnapshotAsRows(t *testing.T) {
	uc, _, books := setup(12)
	books.next = &models.Snapshot{Bookings: makeBookings(3), Generation: 2}

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "s1"})
	require.NoError(t, err)

	assert.Equal(t, 12, resp.Pagination.Total)
	assert.Equal(t, 12, resp.Stats.TotalBookings)
}

func TestExecute_SearchResetsPage(t *testing.T) {
	uc, sessions, _ := setup(12)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{SessionID: "s1", Page: intPtr(2)})
	require.NoError(t, err)
	assert.Equal(t, 2, sessions.sessions["s1"].View.Page)

	resp, err := uc.Execute(ctx, &Request{SessionID: "s1", Search: strPtr("CLIENT-1")})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Pagination.Page)
	assert.Equal(t, 3, resp.Pagination.Total)
	assert.Equal(t, "CLIENT-1", sessions.sessions["s1"].View.Search)
}

func TestExecute_StateIsRemembered(t *testing.T) {
	uc, _, _ := setup(12)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{SessionID: "s1", Search: strPtr("client"), Page: intPtr(2)})
	require.NoError(t, err)

	resp, err := uc.Execute(ctx, &Request{SessionID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Pagination.Page)
	assert.Equal(t, "client", resp.View.Search)
}

func TestExecute_NewGenerationResetsPage(t *testing.T) {
	uc, _, books := setup(12)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{SessionID: "s1", Page: intPtr(3)})
	require.NoError(t, err)

	books.snapshot = models.Snapshot{Bookings: makeBookings(12), Generation: 2}

	resp, err := uc.Execute(ctx, &Request{SessionID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Pagination.Page)
}

func TestExecute_PageIsClampedToPageCount(t *testing.T) {
	uc, sessions, _ := setup(6)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "s1", Page: intPtr(9)})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Pagination.Page)
	assert.Equal(t, 2, sessions.sessions["s1"].View.Page)
}

func TestExecute_DateFilter(t *testing.T) {
	uc, _, books := setup(3)
	books.snapshot.Bookings[2].Date = "2024-03-06"

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID:  "s1",
		DateFilter: &domain.DateFilter{Type: domain.DateFilterRange, StartDate: "2024-03-01", EndDate: "2024-03-05"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Pagination.Total)
}

func TestExecute_Errors(t *testing.T) {
	uc, _, _ := setup(1)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{SessionID: "missing"})
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = uc.Execute(ctx, &Request{SessionID: "s1", Page: intPtr(0)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{SessionID: "s1", DateFilter: &domain.DateFilter{Type: "week"}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{SessionID: "s1", DateFilter: &domain.DateFilter{Type: domain.DateFilterSingle, StartDate: "01/03/2024"}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_IncludesNotification(t *testing.T) {
	sessions := &fakeSessions{sessions: map[string]*domain.Session{"s1": {ID: "s1", View: domain.NewViewState()}}}
	n := &domain.Notification{Message: "Booking cancelled!", Type: domain.NotificationError}
	uc := NewUseCase(sessions, &fakeBookings{}, &fakeNotifications{current: n}, 5, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, n, resp.Notification)
	assert.Empty(t, resp.Bookings)
	assert.Equal(t, 1, resp.Pagination.PageCount)
}
