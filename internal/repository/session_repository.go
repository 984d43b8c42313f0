package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stef4k/sleep-dashboard/internal/domain"
	"github.com/stef4k/sleep-dashboard/pkg/pagination"
)

// SessionRepository serves the immutable session dataset. ListAll feeds the
// analytics engine; List/GetByID back the browsing endpoints.
type SessionRepository interface {
	// ListAll returns every session ordered by start time ascending.
	ListAll(ctx context.Context) ([]domain.SleepSession, error)
	// List returns a filtered page ordered by start time descending,
	// fetching one record past the limit so the caller can build the
	// next-page cursor.
	List(ctx context.Context, filter domain.SessionFilter) ([]domain.SleepSession, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepSession, error)
}

// SessionStore is a writable repository, used by the import pipeline.
type SessionStore interface {
	SessionRepository
	// BulkUpsert inserts sessions, replacing rows that share an ID. Import
	// runs are idempotent because session IDs derive from start times.
	BulkUpsert(ctx context.Context, sessions []domain.SleepSession) error
}

type postgresSessionRepository struct {
	db *gorm.DB
}

// NewPostgresSessionRepository creates a SessionStore backed by Postgres.
func NewPostgresSessionRepository(db *gorm.DB) SessionStore {
	return &postgresSessionRepository{db: db}
}

func (r *postgresSessionRepository) ListAll(ctx context.Context) ([]domain.SleepSession, error) {
	var sessions []domain.SleepSession
	err := r.db.WithContext(ctx).
		Order("start_at ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *postgresSessionRepository) List(ctx context.Context, filter domain.SessionFilter) ([]domain.SleepSession, error) {
	query := r.db.WithContext(ctx).Order("start_at DESC")

	if filter.From != nil {
		query = query.Where("start_at >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("start_at <= ?", filter.To)
	}
	if filter.Kind != "" {
		query = query.Where("kind = ?", filter.Kind)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// For DESC order: records strictly older than the cursor, with
			// the ID as tiebreak for identical start times.
			query = query.Where(
				"(start_at < ?) OR (start_at = ? AND id < ?)",
				cursor.StartAt, cursor.StartAt, cursor.ID,
			)
		}
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var sessions []domain.SleepSession
	if err := query.Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *postgresSessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepSession, error) {
	var session domain.SleepSession
	err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *postgresSessionRepository) BulkUpsert(ctx context.Context, sessions []domain.SleepSession) error {
	if len(sessions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		CreateInBatches(sessions, 200).Error
}
