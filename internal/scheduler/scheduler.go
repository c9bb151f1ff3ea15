package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

const defaultRunTimeout = 30 * time.Second

// Scheduler периодическая синхронизация списка бронирований с CMS
type Scheduler struct {
	cron        *cron.Cron
	spec        string
	refresher   BookingsRefresher
	broadcaster Broadcaster
	timeout     time.Duration
	logger      Logger

	// один прогон за раз: ручной refresh и cron не пересекаются
	runMu sync.Mutex
}

// NewScheduler создает планировщик. Пустой spec выключает фоновую синхронизацию,
// RunOnce при этом продолжает работать. broadcaster может быть nil.
func NewScheduler(spec string, refresher BookingsRefresher, broadcaster Broadcaster, logger Logger) *Scheduler {
	return &Scheduler{
		cron:        cron.New(),
		spec:        spec,
		refresher:   refresher,
		broadcaster: broadcaster,
		timeout:     defaultRunTimeout,
		logger:      logger,
	}
}

// Start регистрирует задачу и запускает cron
func (s *Scheduler) Start() error {
	if s.spec == "" {
		s.logger.Info("Scheduler: resync disabled")
		return nil
	}

	if _, err := s.cron.AddFunc(s.spec, func() {
		_, _ = s.RunOnce(context.Background())
	}); err != nil {
		return fmt.Errorf("failed to schedule resync %q: %w", s.spec, err)
	}

	s.cron.Start()
	s.logger.Info("Scheduler: resync scheduled (%s)", s.spec)
	return nil
}

// Stop останавливает cron и дожидается текущего прогона
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Scheduler: stopped")
}

// RunOnce перезагружает список и рассылает событие клиентам.
// Ошибка загрузки логируется и возвращается, список остается прежним.
func (s *Scheduler) RunOnce(ctx context.Context) (int, error) {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	loaded, err := s.refresher.Refresh(ctx)
	if err != nil {
		s.logger.Error("Scheduler: resync failed after %s: %v", time.Since(start), err)
		return 0, err
	}

	generation := s.refresher.Snapshot().Generation
	if s.broadcaster != nil {
		s.broadcaster.BroadcastBookingsRefreshed(loaded, generation)
	}

	s.logger.Info("Scheduler: resync done: loaded=%d, generation=%d, took=%s", loaded, generation, time.Since(start))
	return loaded, nil
}
