package bookings

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
	"github.com/m04kA/SMC-CompanionAdmin/internal/integrations/cms"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeFetcher struct {
	bookings []cms.Booking
	err      error
	calls    int
}

func (f *fakeFetcher) ListBookings(context.Context) ([]cms.Booking, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

// cmsState текущий статус брони в CMS; первая загрузка читает его и ждет release
type cmsState struct {
	mu      sync.Mutex
	status  string
	calls   int
	started chan struct{}
	release chan struct{}
}

func newCMSState(status string) *cmsState {
	return &cmsState{status: status, started: make(chan struct{}), release: make(chan struct{})}
}

func (c *cmsState) ListBookings(context.Context) ([]cms.Booking, error) {
	c.mu.Lock()
	c.calls++
	first := c.calls == 1
	status := c.status
	c.mu.Unlock()

	if first {
		close(c.started)
		<-c.release
	}
	return []cms.Booking{{ID: 1, DocumentID: "doc1", CurrentStatus: strPtr(status)}}, nil
}

func (c *cmsState) setStatus(status string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = status
}

func (c *cmsState) currentStatus() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

func (c *cmsState) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

type refreshEvent struct {
	loaded     int
	generation uint64
}

type fakeBroadcaster struct {
	events []refreshEvent
}

func (b *fakeBroadcaster) BroadcastBookingsRefreshed(loaded int, generation uint64) {
	b.events = append(b.events, refreshEvent{loaded: loaded, generation: generation})
}

type updateCall struct {
	id     string
	status domain.BookingStatus
	actor  string
}

type fakeUpdater struct {
	calls []updateCall
	err   error
	// onUpdate имитирует изменение в CMS
	onUpdate func()
}

func (u *fakeUpdater) UpdateStatus(_ context.Context, id string, status domain.BookingStatus, actor string) error {
	u.calls = append(u.calls, updateCall{id: id, status: status, actor: actor})
	if u.err != nil {
		return u.err
	}
	if u.onUpdate != nil {
		u.onUpdate()
	}
	return nil
}

type fakeNotifier struct {
	published []domain.Notification
}

func (n *fakeNotifier) Publish(message string, t domain.NotificationType) domain.Notification {
	notification := domain.Notification{Message: message, Type: t}
	n.published = append(n.published, notification)
	return notification
}

type fakeTexts struct {
	texts *cms.PanelTexts
	err   error
}

func (f *fakeTexts) GetPanelTexts(context.Context, string) (*cms.PanelTexts, error) {
	return f.texts, f.err
}

type fakeRecorder struct {
	refreshes []error
	changes   []string
}

func (r *fakeRecorder) ObserveRefresh(_ int, err error) { r.refreshes = append(r.refreshes, err) }
func (r *fakeRecorder) ObserveStatusChange(status, result string) {
	r.changes = append(r.changes, status+":"+result)
}

func newTestService(fetcher *fakeFetcher, updater *fakeUpdater, notifier *fakeNotifier, opts ...Option) *Service {
	return NewService(fetcher, updater, notifier, brl(), nopLogger{}, opts...)
}

func TestService_RefreshReplacesListAndBumpsGeneration(t *testing.T) {
	fetcher := &fakeFetcher{bookings: []cms.Booking{{ID: 1}, {ID: 2}}}
	rec := &fakeRecorder{}
	svc := newTestService(fetcher, &fakeUpdater{}, &fakeNotifier{}, WithRecorder(rec))

	assert.Empty(t, svc.Snapshot().Bookings)

	n, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	snap := svc.Snapshot()
	assert.Len(t, snap.Bookings, 2)
	assert.Equal(t, uint64(1), snap.Generation)

	fetcher.bookings = []cms.Booking{{ID: 3}}
	_, err = svc.Refresh(context.Background())
	require.NoError(t, err)

	snap = svc.Snapshot()
	require.Len(t, snap.Bookings, 1)
	assert.Equal(t, int64(3), snap.Bookings[0].ID)
	assert.Equal(t, uint64(2), snap.Generation)
	assert.Equal(t, []error{nil, nil}, rec.refreshes)
}

func TestService_RefreshFailureKeepsPreviousList(t *testing.T) {
	fetcher := &fakeFetcher{bookings: []cms.Booking{{ID: 1}}}
	svc := newTestService(fetcher, &fakeUpdater{}, &fakeNotifier{})

	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	fetcher.err = errors.New("connection refused")
	_, err = svc.Refresh(context.Background())
	require.ErrorIs(t, err, ErrFetch)

	snap := svc.Snapshot()
	assert.Len(t, snap.Bookings, 1)
	assert.Equal(t, uint64(1), snap.Generation)
}

func TestService_ChangeStatusRefetchesAndNotifies(t *testing.T) {
	fetcher := &fakeFetcher{bookings: []cms.Booking{{ID: 7, DocumentID: "doc7", CurrentStatus: nil}}}
	updater := &fakeUpdater{}
	updater.onUpdate = func() {
		fetcher.bookings = []cms.Booking{{ID: 7, DocumentID: "doc7", CurrentStatus: strPtr("confirmed")}}
	}
	notifier := &fakeNotifier{}
	svc := newTestService(fetcher, updater, notifier)

	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	err = svc.ChangeStatus(context.Background(), domain.BookingRef{ID: 7, DocumentID: "doc7"}, domain.StatusConfirmed, "admin")
	require.NoError(t, err)

	require.Len(t, updater.calls, 1)
	assert.Equal(t, updateCall{id: "doc7", status: domain.StatusConfirmed, actor: "admin"}, updater.calls[0])
	assert.Equal(t, 2, fetcher.calls)

	snap := svc.Snapshot()
	assert.Equal(t, domain.StatusConfirmed, snap.Bookings[0].Status)
	assert.Equal(t, uint64(2), snap.Generation)

	require.Len(t, notifier.published, 1)
	assert.Equal(t, "Booking confirmed successfully!", notifier.published[0].Message)
	assert.Equal(t, domain.NotificationSuccess, notifier.published[0].Type)
}

func TestService_SlowResyncDoesNotOverwriteStatusChange(t *testing.T) {
	ctx := context.Background()
	state := newCMSState("pending")
	updater := &fakeUpdater{onUpdate: func() { state.setStatus("confirmed") }}
	svc := NewService(state, updater, &fakeNotifier{}, brl(), nopLogger{})

	// фоновая загрузка прочитала старый статус и еще не записала список
	resyncDone := make(chan error, 1)
	go func() {
		_, err := svc.Refresh(ctx)
		resyncDone <- err
	}()
	<-state.started

	changeDone := make(chan error, 1)
	go func() {
		changeDone <- svc.ChangeStatus(ctx, domain.BookingRef{ID: 1, DocumentID: "doc1"}, domain.StatusConfirmed, "admin")
	}()

	require.Eventually(t, func() bool { return state.currentStatus() == "confirmed" }, time.Second, 5*time.Millisecond)
	close(state.release)

	require.NoError(t, <-resyncDone)
	require.NoError(t, <-changeDone)

	snap := svc.Snapshot()
	require.Len(t, snap.Bookings, 1)
	assert.Equal(t, domain.StatusConfirmed, snap.Bookings[0].Status)
	assert.Equal(t, uint64(2), snap.Generation)
	assert.Equal(t, 2, state.callCount())
}

func TestService_ChangeStatusBroadcastsRefreshedList(t *testing.T) {
	fetcher := &fakeFetcher{bookings: []cms.Booking{{ID: 1}, {ID: 2}}}
	broadcaster := &fakeBroadcaster{}
	svc := newTestService(fetcher, &fakeUpdater{}, &fakeNotifier{}, WithBroadcaster(broadcaster))

	require.NoError(t, svc.ChangeStatus(context.Background(), domain.BookingRef{ID: 1}, domain.StatusConfirmed, "admin"))
	assert.Equal(t, []refreshEvent{{loaded: 2, generation: 1}}, broadcaster.events)

	// смена статуса прошла, но перечитать список не удалось: события нет
	fetcher.err = errors.New("connection refused")
	require.NoError(t, svc.ChangeStatus(context.Background(), domain.BookingRef{ID: 1}, domain.StatusPending, "admin"))
	assert.Len(t, broadcaster.events, 1)
}

func TestService_ChangeStatusFailureDoesNotBroadcast(t *testing.T) {
	broadcaster := &fakeBroadcaster{}
	svc := newTestService(&fakeFetcher{}, &fakeUpdater{err: errors.New("cms returned 500")}, &fakeNotifier{}, WithBroadcaster(broadcaster))

	err := svc.ChangeStatus(context.Background(), domain.BookingRef{ID: 1}, domain.StatusConfirmed, "admin")
	require.ErrorIs(t, err, ErrStatusUpdate)
	assert.Empty(t, broadcaster.events)
}

func TestService_ChangeStatusFallsBackToNumericID(t *testing.T) {
	updater := &fakeUpdater{}
	svc := newTestService(&fakeFetcher{}, updater, &fakeNotifier{})

	require.NoError(t, svc.ChangeStatus(context.Background(), domain.BookingRef{ID: 42}, domain.StatusPending, "admin"))
	assert.Equal(t, "42", updater.calls[0].id)
}

func TestService_ChangeStatusCancelledIsErrorNotification(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := newTestService(&fakeFetcher{}, &fakeUpdater{}, notifier)

	require.NoError(t, svc.ChangeStatus(context.Background(), domain.BookingRef{ID: 1}, domain.StatusCancelled, "admin"))
	assert.Equal(t, domain.Notification{Message: "Booking cancelled!", Type: domain.NotificationError}, notifier.published[0])
}

func TestService_ChangeStatusUsesPanelTexts(t *testing.T) {
	notifier := &fakeNotifier{}
	texts := &fakeTexts{texts: &cms.PanelTexts{StatusPendingNotification: "Ustawiono oczekujące!"}}
	svc := newTestService(&fakeFetcher{}, &fakeUpdater{}, notifier, WithPanelTexts(texts, "pl"))

	require.NoError(t, svc.ChangeStatus(context.Background(), domain.BookingRef{ID: 1}, domain.StatusPending, "admin"))
	assert.Equal(t, "Ustawiono oczekujące!", notifier.published[0].Message)

	require.NoError(t, svc.ChangeStatus(context.Background(), domain.BookingRef{ID: 1}, domain.StatusConfirmed, "admin"))
	assert.Equal(t, "Booking confirmed successfully!", notifier.published[1].Message)

	texts.err = errors.New("cms down")
	require.NoError(t, svc.ChangeStatus(context.Background(), domain.BookingRef{ID: 1}, domain.StatusPending, "admin"))
	assert.Equal(t, "Booking set to pending!", notifier.published[2].Message)
}

func TestService_ChangeStatusFailureLeavesListUnchanged(t *testing.T) {
	fetcher := &fakeFetcher{bookings: []cms.Booking{{ID: 1, CurrentStatus: strPtr("pending")}}}
	updater := &fakeUpdater{err: errors.New("cms returned 500")}
	notifier := &fakeNotifier{}
	rec := &fakeRecorder{}
	svc := newTestService(fetcher, updater, notifier, WithRecorder(rec))

	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	err = svc.ChangeStatus(context.Background(), domain.BookingRef{ID: 1}, domain.StatusConfirmed, "admin")
	require.ErrorIs(t, err, ErrStatusUpdate)

	assert.Equal(t, 1, fetcher.calls)
	snap := svc.Snapshot()
	assert.Equal(t, domain.StatusPending, snap.Bookings[0].Status)
	assert.Equal(t, uint64(1), snap.Generation)

	require.Len(t, notifier.published, 1)
	assert.Equal(t, domain.NotificationError, notifier.published[0].Type)
	assert.Equal(t, []string{"confirmed:error"}, rec.changes)
}

func TestService_ChangeStatusValidatesInput(t *testing.T) {
	updater := &fakeUpdater{}
	svc := newTestService(&fakeFetcher{}, updater, &fakeNotifier{})

	err := svc.ChangeStatus(context.Background(), domain.BookingRef{}, domain.StatusConfirmed, "admin")
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.ChangeStatus(context.Background(), domain.BookingRef{ID: 1}, domain.BookingStatus("approved"), "admin")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	assert.Empty(t, updater.calls)
}

func TestService_Stats(t *testing.T) {
	fetcher := &fakeFetcher{bookings: []cms.Booking{
		{ID: 1, StartTime: "2024-03-01T10:00:00", CurrentStatus: strPtr("accepted"),
			Companion: &cms.Companion{Name: "Maria", Price: cms.Number{Value: 500, Valid: true}}},
		{ID: 2, StartTime: "2024-03-02T10:00:00"},
	}}
	now := func() time.Time { return time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC) }
	svc := newTestService(fetcher, &fakeUpdater{}, &fakeNotifier{}, WithClock(now))

	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	stats := svc.Stats(svc.Snapshot().Bookings)
	assert.Equal(t, 2, stats.TotalBookings)
	assert.Equal(t, 1, stats.PendingBookings)
	assert.Equal(t, 500.0, stats.Revenue)
	assert.Equal(t, 1, stats.TodayBookings)
}
