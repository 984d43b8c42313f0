package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/stef4k/sleep-dashboard/internal/domain"
	"github.com/stef4k/sleep-dashboard/internal/repository"
	"github.com/stef4k/sleep-dashboard/pkg/pagination"
)

// SessionService exposes the loaded dataset as API resources.
type SessionService interface {
	// List returns sessions newest first with cursor pagination.
	List(ctx context.Context, filter domain.SessionFilter) (*domain.SessionListResponse, error)
	// Get returns a single session by ID.
	Get(ctx context.Context, id uuid.UUID) (*domain.SessionResponse, error)
}

type sessionService struct {
	repo repository.SessionRepository
}

// NewSessionService creates a new SessionService.
func NewSessionService(repo repository.SessionRepository) SessionService {
	return &sessionService{repo: repo}
}

func (s *sessionService) List(ctx context.Context, filter domain.SessionFilter) (*domain.SessionListResponse, error) {
	if _, err := pagination.DecodeCursor(filter.Cursor); err != nil {
		return nil, fmt.Errorf("%w: invalid cursor", domain.ErrInvalidInput)
	}
	filter.Limit = pagination.NormalizeLimit(filter.Limit)

	// Repository fetches limit+1 rows so one extra record signals a next page.
	sessions, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	hasMore := len(sessions) > filter.Limit
	if hasMore {
		sessions = sessions[:filter.Limit]
	}

	data := make([]domain.SessionResponse, 0, len(sessions))
	for i := range sessions {
		data = append(data, sessions[i].ToResponse())
	}

	response := &domain.SessionListResponse{
		Data: data,
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}
	if hasMore && len(sessions) > 0 {
		last := sessions[len(sessions)-1]
		cursor := pagination.Cursor{ID: last.ID, StartAt: last.StartAt}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func (s *sessionService) Get(ctx context.Context, id uuid.UUID) (*domain.SessionResponse, error) {
	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := session.ToResponse()
	return &response, nil
}
