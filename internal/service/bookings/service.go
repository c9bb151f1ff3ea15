package bookings

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
	"github.com/m04kA/SMC-CompanionAdmin/internal/integrations/cms"
	"github.com/m04kA/SMC-CompanionAdmin/internal/service/bookings/models"
)

// Тексты уведомлений по умолчанию (если в CMS не заданы тексты панели)
const (
	msgStatusConfirmed = "Booking confirmed successfully!"
	msgStatusCancelled = "Booking cancelled!"
	msgStatusPending   = "Booking set to pending!"
	msgStatusFailed    = "Failed to update status!"
)

// Service держит текущий список бронирований дашборда.
// Список пишется только в Refresh и целиком заменяется при каждой успешной загрузке.
type Service struct {
	fetcher     BookingsFetcher
	updater     StatusUpdater
	notifier    Notifier
	texts       PanelTextsProvider
	recorder    Recorder
	broadcaster RefreshBroadcaster
	amounts     AmountFormatter
	locale      string
	logger      Logger
	now         func() time.Time

	// загрузка и замена списка по одной: более ранняя загрузка не перетирает более позднюю
	refreshMu sync.Mutex

	mu         sync.RWMutex
	list       []domain.DisplayBooking
	generation uint64
}

// Option настройка сервиса
type Option func(*Service)

// WithPanelTexts тексты уведомлений из CMS для локали
func WithPanelTexts(texts PanelTextsProvider, locale string) Option {
	return func(s *Service) {
		s.texts = texts
		s.locale = locale
	}
}

// WithRecorder метрики
func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

// WithBroadcaster рассылка события о перезагрузке списка после смены статуса
func WithBroadcaster(b RefreshBroadcaster) Option {
	return func(s *Service) { s.broadcaster = b }
}

// WithClock источник текущего времени (для статистики "сегодня")
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	fetcher BookingsFetcher,
	updater StatusUpdater,
	notifier Notifier,
	amounts AmountFormatter,
	logger Logger,
	opts ...Option,
) *Service {
	s := &Service{
		fetcher:  fetcher,
		updater:  updater,
		notifier: notifier,
		amounts:  amounts,
		logger:   logger,
		now:      time.Now,
		list:     []domain.DisplayBooking{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Refresh загружает все бронирования, нормализует и заменяет текущий список.
// При ошибке прежний список остается без изменений.
func (s *Service) Refresh(ctx context.Context) (int, error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	s.logger.Info("Refresh: fetching bookings")

	raw, err := s.fetcher.ListBookings(ctx)
	if err != nil {
		s.logger.Error("Refresh: failed to fetch bookings: %v", err)
		s.observeRefresh(0, err)
		return 0, fmt.Errorf("%w: Refresh - fetcher error: %v", ErrFetch, err)
	}

	list := NormalizeAll(raw, s.amounts)

	s.mu.Lock()
	s.list = list
	s.generation++
	generation := s.generation
	s.mu.Unlock()

	s.observeRefresh(len(list), nil)
	s.logger.Info("Refresh: loaded %d bookings, generation=%d", len(list), generation)
	return len(list), nil
}

// Snapshot текущий список и его поколение.
// Срез нельзя изменять: он общий для всех читателей.
func (s *Service) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.Snapshot{
		Bookings:   s.list,
		Generation: s.generation,
	}
}

// Stats сводка по переданному списку (обычно Snapshot().Bookings)
func (s *Service) Stats(list []domain.DisplayBooking) models.Stats {
	return ComputeStats(list, s.now(), s.amounts)
}

// Amounts форматтер сумм сервиса
func (s *Service) Amounts() AmountFormatter {
	return s.amounts
}

// ChangeStatus отправляет смену статуса и после успеха перезагружает список целиком.
// Локальный список заранее не меняется, поэтому при ошибке откатывать нечего.
func (s *Service) ChangeStatus(ctx context.Context, ref domain.BookingRef, status domain.BookingStatus, actor string) error {
	if ref.IsZero() {
		return fmt.Errorf("%w: empty booking identifier", ErrInvalidInput)
	}
	if !status.IsCanonical() {
		s.logger.Warn("ChangeStatus: invalid status=%s for booking=%s", status, ref.Identifier())
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	id := ref.Identifier()
	s.logger.Info("ChangeStatus: booking=%s status=%s actor=%s", id, status, actor)

	if err := s.updater.UpdateStatus(ctx, id, status, actor); err != nil {
		s.logger.Error("ChangeStatus: failed to update booking=%s: %v", id, err)
		s.observeStatusChange(status, "error")
		s.notifier.Publish(msgStatusFailed, domain.NotificationError)
		return fmt.Errorf("%w: ChangeStatus - booking=%s: %v", ErrStatusUpdate, id, err)
	}

	// Обновление принято CMS; список перечитываем, даже если сама перезагрузка упадет
	if loaded, err := s.Refresh(ctx); err != nil {
		s.logger.Warn("ChangeStatus: booking=%s updated but refresh failed: %v", id, err)
	} else if s.broadcaster != nil {
		s.broadcaster.BroadcastBookingsRefreshed(loaded, s.Snapshot().Generation)
	}

	s.observeStatusChange(status, "ok")
	s.notifier.Publish(s.statusMessage(ctx, status), notificationType(status))

	s.logger.Info("ChangeStatus: booking=%s set to %s", id, status)
	return nil
}

// statusMessage текст уведомления: из текстов панели, иначе по умолчанию
func (s *Service) statusMessage(ctx context.Context, status domain.BookingStatus) string {
	var texts *cms.PanelTexts
	if s.texts != nil {
		t, err := s.texts.GetPanelTexts(ctx, s.locale)
		if err != nil {
			s.logger.Warn("ChangeStatus: panel texts unavailable, using defaults: %v", err)
		} else {
			texts = t
		}
	}

	switch status {
	case domain.StatusConfirmed:
		return firstNonEmpty(panelText(texts, func(t *cms.PanelTexts) string { return t.StatusConfirmedNotification }), msgStatusConfirmed)
	case domain.StatusCancelled:
		return firstNonEmpty(panelText(texts, func(t *cms.PanelTexts) string { return t.StatusCancelledNotification }), msgStatusCancelled)
	default:
		return firstNonEmpty(panelText(texts, func(t *cms.PanelTexts) string { return t.StatusPendingNotification }), msgStatusPending)
	}
}

// notificationType отмена показывается как ошибка, остальное как успех
func notificationType(status domain.BookingStatus) domain.NotificationType {
	if status == domain.StatusCancelled {
		return domain.NotificationError
	}
	return domain.NotificationSuccess
}

func panelText(texts *cms.PanelTexts, field func(*cms.PanelTexts) string) string {
	if texts == nil {
		return ""
	}
	return field(texts)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func (s *Service) observeRefresh(loaded int, err error) {
	if s.recorder != nil {
		s.recorder.ObserveRefresh(loaded, err)
	}
}

func (s *Service) observeStatusChange(status domain.BookingStatus, result string) {
	if s.recorder != nil {
		s.recorder.ObserveStatusChange(status.String(), result)
	}
}
