// Package quotes serves the dashboard's quote of the day from a local cache
// of philosopher quotes, so page loads never wait on the upstream API.
package quotes

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"os"
	"time"

	"github.com/stef4k/sleep-dashboard/internal/domain"
)

// Entry matches the on-disk cache written by the refresh script.
type Entry struct {
	Name      string `json:"name"`
	Quote     string `json:"quote"`
	ImageURL  string `json:"image_url"`
	QuoteDate string `json:"quote_date,omitempty"`
	School    string `json:"school"`
}

// Service picks a deterministic quote per civil day from an in-memory cache.
type Service struct {
	quotes []domain.Quote
}

// New creates a Service over the given quotes.
func New(qs []domain.Quote) *Service {
	return &Service{quotes: qs}
}

// NewFromFile loads the JSON cache at path. A missing or empty cache is not
// an error here; QuoteFor reports it per request instead, so the dashboard
// still boots without the optional file.
func NewFromFile(path string) (*Service, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Service{}, nil
		}
		return nil, fmt.Errorf("failed to read quote cache: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse quote cache %s: %w", path, err)
	}

	qs := make([]domain.Quote, 0, len(entries))
	for _, e := range entries {
		if e.Quote == "" {
			continue
		}
		qs = append(qs, domain.Quote{
			Text:        e.Quote,
			Philosopher: e.Name,
			School:      e.School,
			ImageURL:    e.ImageURL,
		})
	}
	return &Service{quotes: qs}, nil
}

// Len reports how many quotes are cached.
func (s *Service) Len() int {
	return len(s.quotes)
}

// QuoteFor returns the quote for the given civil day. The pick hashes the
// date, so every request for the same day sees the same quote and the
// rotation needs no stored state.
func (s *Service) QuoteFor(date time.Time) (*domain.QuoteResponse, error) {
	if len(s.quotes) == 0 {
		return nil, fmt.Errorf("quote cache is empty: %w", domain.ErrNotFound)
	}

	day := date.Format("2006-01-02")
	h := fnv.New32a()
	h.Write([]byte(day))
	pick := int(h.Sum32() % uint32(len(s.quotes)))

	return &domain.QuoteResponse{
		Date:  day,
		Quote: s.quotes[pick],
	}, nil
}
