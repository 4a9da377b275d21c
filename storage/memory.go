package storage

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryDocumentStorage stores encoded documents so callers never share
// memory with what was saved.
type MemoryDocumentStorage struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemoryDocumentStorage() *MemoryDocumentStorage {
	return &MemoryDocumentStorage{docs: make(map[string][]byte)}
}

func (s *MemoryDocumentStorage) Load(_ context.Context, key string, into interface{}) error {
	s.mu.RLock()
	data, ok := s.docs[key]
	s.mu.RUnlock()
	if !ok {
		return ErrDocumentNotFound
	}
	return json.Unmarshal(data, into)
}

func (s *MemoryDocumentStorage) Save(_ context.Context, key string, doc interface{}) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.docs[key] = data
	s.mu.Unlock()
	return nil
}
