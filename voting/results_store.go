package voting

import (
	"context"
	"errors"
	"fmt"
	"github.com/alex-pricope/hackathon-voting/logging"
	"github.com/alex-pricope/hackathon-voting/storage"
	"sync"
)

type ResultsStore struct {
	mu      sync.RWMutex
	current ResultsSnapshot
	awards  AwardMap
	docs    storage.DocumentStorage
}

// NewResultsStore loads the last persisted snapshot, falling back to empty
// categories when there is none or it cannot be read.
func NewResultsStore(ctx context.Context, awards AwardMap, docs storage.DocumentStorage) *ResultsStore {
	s := &ResultsStore{awards: awards, docs: docs, current: EmptyResults(awards)}

	var loaded ResultsSnapshot
	err := docs.Load(ctx, storage.DocumentResults, &loaded)
	switch {
	case errors.Is(err, storage.ErrDocumentNotFound):
		logging.Log.Info("RESULTS: no results document yet")
	case err != nil:
		logging.Log.Warnf("RESULTS: failed to load results, serving empty results: %v", err)
	default:
		s.current = s.normalize(loaded)
	}
	return s
}

func (s *ResultsStore) Current() ResultsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Replace persists snapshot and then swaps it in. On failure the previous
// snapshot stays current.
func (s *ResultsStore) Replace(ctx context.Context, snapshot ResultsSnapshot) error {
	snapshot = s.normalize(snapshot)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.docs.Save(ctx, storage.DocumentResults, snapshot); err != nil {
		logging.Log.Errorf("RESULTS: failed to persist results: %v", err)
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	s.current = snapshot
	return nil
}

// normalize makes sure every configured category is present with a non-nil
// team list.
func (s *ResultsStore) normalize(snapshot ResultsSnapshot) ResultsSnapshot {
	out := make(ResultsSnapshot, len(s.awards))
	for key := range s.awards {
		cr, ok := snapshot[key]
		if !ok || cr == nil || cr.Teams == nil {
			out[key] = &CategoryResults{Teams: []TeamResult{}}
			continue
		}
		out[key] = cr
	}
	return out
}
