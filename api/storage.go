package api

import (
	"context"
	"github.com/alex-pricope/hackathon-voting/storage"
	"time"
)

// timeoutDocumentStorage bounds every storage call by timeout.
type timeoutDocumentStorage struct {
	inner   storage.DocumentStorage
	timeout time.Duration
}

func (s *timeoutDocumentStorage) Load(ctx context.Context, key string, into interface{}) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.inner.Load(ctx, key, into)
}

func (s *timeoutDocumentStorage) Save(ctx context.Context, key string, doc interface{}) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.inner.Save(ctx, key, doc)
}

func (s *timeoutDocumentStorage) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}
