package export_bookings

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

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
	session *domain.Session
	err     error
}

func (f *fakeSessions) Get(context.Context, string) (*domain.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}

type fakeBookings struct {
	list []domain.DisplayBooking
}

func (f *fakeBookings) Snapshot() models.Snapshot {
	return models.Snapshot{Bookings: f.list, Generation: 1}
}

type recordingWriter struct {
	written []domain.DisplayBooking
	err     error
}

func (r *recordingWriter) write(w io.Writer, list []domain.DisplayBooking) error {
	if r.err != nil {
		return r.err
	}
	r.written = list
	_, err := w.Write([]byte("xlsx"))
	return err
}

func sessionWithView(search string, df domain.DateFilter) *domain.Session {
	view := domain.NewViewState()
	view.Search = search
	view.DateFilter = df
	return &domain.Session{ID: "s1", User: domain.User{ID: 7}, View: view}
}

func sampleBookings() []domain.DisplayBooking {
	return []domain.DisplayBooking{
		{ID: 1, ClientName: "Ana", CompanionName: "Maria", Date: "2024-03-01"},
		{ID: 2, ClientName: "Bruno", CompanionName: "Maria", Date: "2024-03-02"},
		{ID: 3, ClientName: "Carla", CompanionName: "Julia", Date: "2024-03-01"},
	}
}

func TestUseCase_ExportsFilteredListWithoutPaging(t *testing.T) {
	writer := &recordingWriter{}
	sessions := &fakeSessions{session: sessionWithView("maria", domain.DateFilter{Type: domain.DateFilterSingle, StartDate: "2024-03-01"})}
	uc := NewUseCase(sessions, &fakeBookings{list: sampleBookings()}, writer.write, nopLogger{})
	uc.now = func() time.Time { return time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC) }

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "s1"})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "bookings-2024-03-05.xlsx", resp.FileName)
	assert.Equal(t, []byte("xlsx"), resp.Content)
	require.Len(t, writer.written, 1)
	assert.Equal(t, int64(1), writer.written[0].ID)
}

func TestUseCase_NoFiltersExportsEverything(t *testing.T) {
	writer := &recordingWriter{}
	sessions := &fakeSessions{session: sessionWithView("", domain.DateFilter{Type: domain.DateFilterSingle})}
	uc := NewUseCase(sessions, &fakeBookings{list: sampleBookings()}, writer.write, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Count)
}

func TestUseCase_Errors(t *testing.T) {
	uc := NewUseCase(&fakeSessions{}, &fakeBookings{}, (&recordingWriter{}).write, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	uc = NewUseCase(&fakeSessions{err: sessionService.ErrSessionNotFound}, &fakeBookings{}, (&recordingWriter{}).write, nopLogger{})
	_, err = uc.Execute(context.Background(), &Request{SessionID: "s1"})
	assert.ErrorIs(t, err, ErrSessionNotFound)

	failing := &recordingWriter{err: errors.New("disk full")}
	uc = NewUseCase(&fakeSessions{session: sessionWithView("", domain.DateFilter{Type: domain.DateFilterSingle})}, &fakeBookings{}, failing.write, nopLogger{})
	_, err = uc.Execute(context.Background(), &Request{SessionID: "s1"})
	assert.ErrorIs(t, err, ErrInternal)
}
