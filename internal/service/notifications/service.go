package notifications

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
)

// Service хранит последнее уведомление и скрывает его по истечении TTL.
// Новое уведомление заменяет предыдущее. Клиенты получают expiresAt
// и скрывают уведомление сами, отдельного события о скрытии нет.
type Service struct {
	ttl         time.Duration
	broadcaster Broadcaster
	logger      Logger
	now         func() time.Time

	mu      sync.Mutex
	current *domain.Notification
}

// NewService создает сервис уведомлений; broadcaster может быть nil
func NewService(ttl time.Duration, broadcaster Broadcaster, logger Logger) *Service {
	return &Service{
		ttl:         ttl,
		broadcaster: broadcaster,
		logger:      logger,
		now:         time.Now,
	}
}

// WithClock подменяет источник времени
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Publish публикует уведомление и рассылает его клиентам
func (s *Service) Publish(message string, notificationType domain.NotificationType) domain.Notification {
	now := s.now()
	n := domain.Notification{
		Message:   message,
		Type:      notificationType,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.current = &n
	s.mu.Unlock()

	s.logger.Info("Notification published: type=%s, message=%q", notificationType, message)

	if s.broadcaster != nil {
		s.broadcaster.BroadcastNotification(n)
	}

	return n
}

// Current активное уведомление или nil, если его нет или оно истекло
func (s *Service) Current() *domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	if s.current.Expired(s.now()) {
		s.current = nil
		return nil
	}

	n := *s.current
	return &n
}
