package statuslog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CompanionAdmin/internal/domain"
	"github.com/m04kA/SMC-CompanionAdmin/pkg/psqlbuilder"
)

const (
	table        = "booking_status_log"
	defaultLimit = 50
	maxLimit     = 500
)

// Schema DDL журнала смены статусов
const Schema = `
CREATE TABLE IF NOT EXISTS booking_status_log (
	id          BIGSERIAL PRIMARY KEY,
	booking_ref TEXT        NOT NULL,
	status      TEXT        NOT NULL,
	actor       TEXT        NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_booking_status_log_ref ON booking_status_log (booking_ref, created_at DESC);
`

// Repository журнал смены статусов бронирований в Postgres
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// EnsureSchema создает таблицу, если ее нет
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("%w: EnsureSchema: %v", ErrExecQuery, err)
	}
	return nil
}

// Append добавляет запись о смене статуса
func (r *Repository) Append(ctx context.Context, entry *domain.StatusLogEntry) (*domain.StatusLogEntry, error) {
	query, args, err := buildInsert(entry)
	if err != nil {
		return nil, fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	result := *entry
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&result.ID, &result.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	return &result, nil
}

// List записи журнала от новых к старым, опционально по одному бронированию
func (r *Repository) List(ctx context.Context, filter domain.StatusLogFilter) ([]*domain.StatusLogEntry, error) {
	query, args, err := buildList(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func buildInsert(entry *domain.StatusLogEntry) (string, []interface{}, error) {
	return psqlbuilder.Insert(table).
		Columns("booking_ref", "status", "actor").
		Values(entry.BookingRef, string(entry.Status), entry.Actor).
		Suffix("RETURNING id, created_at").
		ToSql()
}

func buildList(filter domain.StatusLogFilter) (string, []interface{}, error) {
	limit := filter.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	builder := psqlbuilder.Select("id", "booking_ref", "status", "actor", "created_at").
		From(table).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		Offset(filter.Offset)

	if filter.BookingRef != nil {
		builder = builder.Where(squirrel.Eq{"booking_ref": *filter.BookingRef})
	}

	return builder.ToSql()
}

func scanEntries(rows *sql.Rows) ([]*domain.StatusLogEntry, error) {
	entries := make([]*domain.StatusLogEntry, 0)

	for rows.Next() {
		var (
			e      domain.StatusLogEntry
			status string
		)
		if err := rows.Scan(&e.ID, &e.BookingRef, &status, &e.Actor, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanRow, err)
		}
		e.Status = domain.BookingStatus(status)
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows iteration: %v", ErrScanRow, err)
	}

	return entries, nil
}
