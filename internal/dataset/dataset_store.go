package dataset

import (
	"context"
	"sync"

	"go-salarydash/internal/shared/contextutil"

	"go.uber.org/zap"
)

// Store is the process-wide cache of the salary table. The file is read
// once on first access and never invalidated; after that the slice is
// immutable, so concurrent readers need no locking.
type Store struct {
	path string

	once    sync.Once
	records []Record
	facets  Facets
	err     error
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Records returns the full cached table.
func (s *Store) Records(ctx context.Context) ([]Record, error) {
	s.load(ctx)
	return s.records, s.err
}

// Facets returns the distinct filterable values of the cached table.
func (s *Store) Facets(ctx context.Context) (Facets, error) {
	s.load(ctx)
	return s.facets, s.err
}

func (s *Store) load(ctx context.Context) {
	s.once.Do(func() {
		log := contextutil.GetLogger(ctx, zap.L())

		records, err := Load(s.path)
		if err != nil {
			s.err = err
			log.Error("salary dataset load failed", zap.String("path", s.path), zap.Error(err))
			return
		}

		s.records = records
		s.facets = buildFacets(records)
		log.Info("salary dataset loaded",
			zap.String("path", s.path),
			zap.Int("rows", len(records)),
		)
	})
}
