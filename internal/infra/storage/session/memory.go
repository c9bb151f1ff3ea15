package session

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
)

// MemoryRepository хранилище сессий в памяти процесса, когда Redis недоступен.
// Сессии не переживают перезапуск.
type MemoryRepository struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
	now      func() time.Time
}

type memoryEntry struct {
	session   domain.Session
	expiresAt time.Time
}

// NewMemoryRepository создает хранилище в памяти
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		sessions: make(map[string]memoryEntry),
		now:      time.Now,
	}
}

func (r *MemoryRepository) Save(_ context.Context, s *domain.Session, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[s.ID] = memoryEntry{session: *s, expiresAt: r.now().Add(ttl)}
	return nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if !r.now().Before(entry.expiresAt) {
		delete(r.sessions, id)
		return nil, ErrSessionNotFound
	}

	s := entry.session
	return &s, nil
}

func (r *MemoryRepository) UpdateView(ctx context.Context, id string, view domain.ViewState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.sessions[id]
	if !ok || !r.now().Before(entry.expiresAt) {
		return ErrSessionNotFound
	}

	entry.session.View = view
	r.sessions[id] = entry
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	return nil
}
