package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stef4k/sleep-dashboard/internal/dataset"
	"github.com/stef4k/sleep-dashboard/internal/domain"
	"github.com/stef4k/sleep-dashboard/internal/quotes"
)

// QuoteService serves the philosopher quote of the day.
type QuoteService interface {
	// QuoteOfDay returns the quote pinned to the given date, or to the
	// current UTC date when none is given.
	QuoteOfDay(ctx context.Context, date string) (*domain.QuoteResponse, error)
}

type quoteService struct {
	quotes *quotes.Service
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(q *quotes.Service) QuoteService {
	return &quoteService{quotes: q}
}

func (s *quoteService) QuoteOfDay(ctx context.Context, date string) (*domain.QuoteResponse, error) {
	day := time.Now().UTC()
	if date != "" {
		parsed, err := time.Parse(dataset.DateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("%w: date must be formatted as YYYY-MM-DD", domain.ErrInvalidInput)
		}
		day = parsed
	}

	return s.quotes.QuoteFor(day)
}
