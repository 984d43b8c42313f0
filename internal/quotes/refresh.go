package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://philosophersapi.com"
	fetchTimeout   = 15 * time.Second
)

// allowedSchools keeps the cache to the Greek schools the dashboard quotes
// from.
var allowedSchools = map[string]struct{}{
	"Aristotelianism": {},
	"Cynicism":        {},
	"Platonism":       {},
	"Pre-Socratic":    {},
	"Pythagoreanism":  {},
	"Stoicism":        {},
	"Neo-Platonism":   {},
	"Neoplatonism":    {},
	"Classical Greek": {},
}

// Fetcher pulls quotes from the philosophers API and builds the local cache.
type Fetcher struct {
	baseURL string
	client  *http.Client
}

// NewFetcher creates a Fetcher. An empty baseURL uses the public API.
func NewFetcher(baseURL string) *Fetcher {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Fetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: fetchTimeout},
	}
}

type indexItem struct {
	ID string `json:"id"`
}

type quoteDetail struct {
	Quote       string `json:"quote"`
	Philosopher struct {
		Name   string            `json:"name"`
		School string            `json:"school"`
		Images map[string]string `json:"images"`
	} `json:"philosopher"`
}

// imagePreference orders the API's image variants best first.
var imagePreference = []string{
	"full1200x1600",
	"full840x1120",
	"full600x800",
	"ill750x750",
	"ill500x500",
	"ill250x250",
	"thumbnailIll150x150",
	"thumbnailIll50x50",
}

// FetchAll downloads every quote, keeps the allowed schools, and returns the
// cache entries in API order.
func (f *Fetcher) FetchAll(ctx context.Context) ([]Entry, error) {
	var index []indexItem
	if err := f.getJSON(ctx, "/api/quotes", &index); err != nil {
		return nil, fmt.Errorf("failed to fetch quote index: %w", err)
	}

	var entries []Entry
	for _, item := range index {
		if item.ID == "" {
			continue
		}
		var detail quoteDetail
		if err := f.getJSON(ctx, "/api/quotes/"+item.ID, &detail); err != nil {
			return nil, fmt.Errorf("failed to fetch quote %s: %w", item.ID, err)
		}

		quote := strings.TrimSpace(detail.Quote)
		school := strings.TrimSpace(detail.Philosopher.School)
		if quote == "" {
			continue
		}
		if _, ok := allowedSchools[school]; !ok {
			continue
		}

		entries = append(entries, Entry{
			Name:     strings.TrimSpace(detail.Philosopher.Name),
			Quote:    quote,
			ImageURL: f.normalizeURL(pickImage(detail.Philosopher.Images)),
			School:   school,
		})
	}
	return entries, nil
}

// WriteCache writes entries as the JSON cache NewFromFile reads.
func WriteCache(path string, entries []Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode quote cache: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write quote cache: %w", err)
	}
	return nil
}

func (f *Fetcher) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func pickImage(images map[string]string) string {
	for _, key := range imagePreference {
		if url := images[key]; url != "" {
			return url
		}
	}
	for _, url := range images {
		if url != "" {
			return url
		}
	}
	return ""
}

func (f *Fetcher) normalizeURL(u string) string {
	u = strings.TrimSpace(u)
	switch {
	case u == "":
		return ""
	case strings.HasPrefix(u, "http://"), strings.HasPrefix(u, "https://"):
		return u
	case strings.HasPrefix(u, "//"):
		return "https:" + u
	case !strings.HasPrefix(u, "/"):
		u = "/" + u
	}
	return f.baseURL + u
}
