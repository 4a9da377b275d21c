package storage

import (
	"context"
	"time"
)

const (
	DocumentVotes   = "votes"
	DocumentResults = "results"
	DocumentTeams   = "teams"
)

// DocumentStorage keeps whole JSON documents under a key. Save replaces the
// stored document entirely; there is no partial update.
type DocumentStorage interface {
	Load(ctx context.Context, key string, into interface{}) error
	Save(ctx context.Context, key string, doc interface{}) error
}

type Document struct {
	Key       string    `dynamodbav:"PK"`
	Body      string    `dynamodbav:"Body"`
	UpdatedAt time.Time `dynamodbav:"UpdatedAt"`
}
