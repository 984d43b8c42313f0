package repository

import (
	"github.com/stef4k/sleep-dashboard/internal/dataset"
)

// NewFileSessionRepository loads a CSV export once and serves it from
// memory. With skipMalformed set, malformed rows are dropped and reported in
// the second return value instead of failing the load.
func NewFileSessionRepository(path string, skipMalformed bool) (SessionRepository, []dataset.SkippedRecord, error) {
	loader := dataset.Loader{SkipMalformed: skipMalformed}
	res, err := loader.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return NewMemorySessionRepository(res.Sessions), res.Skipped, nil
}
