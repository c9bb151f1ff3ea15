package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
)

// Repository хранилище сессий администраторов в Redis.
// Сессия хранится целиком в JSON под ключом "<prefix>:session:<id>".
type Repository struct {
	client RedisClient
	prefix string
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(client RedisClient, prefix string) *Repository {
	return &Repository{client: client, prefix: prefix}
}

// NewRedisClient создает клиент Redis
func NewRedisClient(addr, password string, db, poolSize int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
		PoolSize: poolSize,
	})
}

// Ping проверяет соединение с Redis
func Ping(ctx context.Context, client *redis.Client) error {
	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to ping Redis: %w", err)
	}
	return nil
}

// Save сохраняет сессию с TTL
func (r *Repository) Save(ctx context.Context, s *domain.Session, ttl time.Duration) error {
	return r.set(ctx, s, ttl)
}

// Get возвращает сессию по id
func (r *Repository) Get(ctx context.Context, id string) (*domain.Session, error) {
	data, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: Get - id=%s: %v", ErrStorage, id, err)
	}

	var s domain.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: Get - id=%s: %v", ErrDecode, id, err)
	}

	return &s, nil
}

// UpdateView сохраняет состояние дашборда, не продлевая TTL сессии.
// Запись только поверх существующего ключа (SET XX): удаленная между чтением
// и записью сессия не восстанавливается.
func (r *Repository) UpdateView(ctx context.Context, id string, view domain.ViewState) error {
	s, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	s.View = view
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("%w: id=%s: %v", ErrEncode, id, err)
	}

	err = r.client.SetArgs(ctx, r.key(id), data, redis.SetArgs{Mode: "XX", KeepTTL: true}).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("%w: UpdateView - id=%s: %v", ErrStorage, id, err)
	}
	return nil
}

// Delete удаляет сессию
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return fmt.Errorf("%w: Delete - id=%s: %v", ErrStorage, id, err)
	}
	return nil
}

func (r *Repository) set(ctx context.Context, s *domain.Session, ttl time.Duration) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("%w: id=%s: %v", ErrEncode, s.ID, err)
	}

	if err := r.client.Set(ctx, r.key(s.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - id=%s: %v", ErrStorage, s.ID, err)
	}
	return nil
}

func (r *Repository) key(id string) string {
	return r.prefix + ":session:" + id
}
