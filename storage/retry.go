package storage

import (
	"context"
	"errors"
	"github.com/alex-pricope/hackathon-voting/logging"
	"time"
)

// RetryingDocumentStorage retries failed calls a bounded number of times with
// a fixed delay, then gives up and returns the last error.
type RetryingDocumentStorage struct {
	Inner    DocumentStorage
	Attempts int
	Delay    time.Duration
}

func (s *RetryingDocumentStorage) Load(ctx context.Context, key string, into interface{}) error {
	return s.do(ctx, "load "+key, func() error { return s.Inner.Load(ctx, key, into) })
}

func (s *RetryingDocumentStorage) Save(ctx context.Context, key string, doc interface{}) error {
	return s.do(ctx, "save "+key, func() error { return s.Inner.Save(ctx, key, doc) })
}

func (s *RetryingDocumentStorage) do(ctx context.Context, op string, fn func() error) error {
	attempts := s.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for i := 1; i <= attempts; i++ {
		err = fn()
		if err == nil || errors.Is(err, ErrDocumentNotFound) {
			return err
		}
		if ctx.Err() != nil {
			return err
		}
		if i == attempts {
			break
		}
		logging.Log.Warnf("STORAGE: %s failed (attempt %d/%d): %v", op, i, attempts, err)

		timer := time.NewTimer(s.Delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return err
		case <-timer.C:
		}
	}
	return err
}
