package repository

import (
	"bytes"
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/stef4k/sleep-dashboard/internal/domain"
	"github.com/stef4k/sleep-dashboard/pkg/pagination"
)

// memorySessionRepository serves a dataset loaded once at startup. The slice
// is private to the repository and handed out only as copies, keeping the
// loaded records immutable no matter what callers do with the results.
type memorySessionRepository struct {
	sessions []domain.SleepSession // ascending by start time
}

// NewMemorySessionRepository creates a read-only repository over the given
// sessions. The input is copied and re-sorted by start time ascending.
func NewMemorySessionRepository(sessions []domain.SleepSession) SessionRepository {
	owned := make([]domain.SleepSession, len(sessions))
	copy(owned, sessions)
	sort.Slice(owned, func(i, j int) bool {
		return owned[i].StartAt.Before(owned[j].StartAt)
	})
	return &memorySessionRepository{sessions: owned}
}

func (r *memorySessionRepository) ListAll(ctx context.Context) ([]domain.SleepSession, error) {
	out := make([]domain.SleepSession, len(r.sessions))
	copy(out, r.sessions)
	return out, nil
}

func (r *memorySessionRepository) List(ctx context.Context, filter domain.SessionFilter) ([]domain.SleepSession, error) {
	// Newest first, matching the Postgres ordering.
	out := make([]domain.SleepSession, 0, len(r.sessions))
	for i := len(r.sessions) - 1; i >= 0; i-- {
		s := r.sessions[i]
		if filter.From != nil && s.StartAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && s.StartAt.After(*filter.To) {
			continue
		}
		if filter.Kind != "" && s.Kind != filter.Kind {
			continue
		}
		out = append(out, s)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			out = afterCursor(out, cursor)
		}
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	if len(out) > limit+1 {
		out = out[:limit+1]
	}
	return out, nil
}

func (r *memorySessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepSession, error) {
	for i := range r.sessions {
		if r.sessions[i].ID == id {
			s := r.sessions[i]
			return &s, nil
		}
	}
	return nil, domain.ErrNotFound
}

// afterCursor keeps the sessions strictly older than the cursor position,
// mirroring the SQL predicate used by the Postgres repository.
func afterCursor(sessions []domain.SleepSession, cursor *pagination.Cursor) []domain.SleepSession {
	out := sessions[:0]
	for _, s := range sessions {
		if s.StartAt.Before(cursor.StartAt) {
			out = append(out, s)
			continue
		}
		if s.StartAt.Equal(cursor.StartAt) && bytes.Compare(s.ID[:], cursor.ID[:]) < 0 {
			out = append(out, s)
		}
	}
	return out
}
