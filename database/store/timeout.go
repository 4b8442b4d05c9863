package store

import (
	"context"
	"time"

	"finalprojectapi/models"
)

// timeoutStore bounds every call with a deadline.
type timeoutStore struct {
	next    DocumentStore
	timeout time.Duration
}

// WithTimeout wraps ds so each call runs under its own deadline. A
// non-positive timeout returns ds unchanged.
func WithTimeout(ds DocumentStore, timeout time.Duration) DocumentStore {
	if timeout <= 0 {
		return ds
	}
	return &timeoutStore{next: ds, timeout: timeout}
}

func (s *timeoutStore) Find(ctx context.Context, collection string, q Query) ([]models.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.next.Find(ctx, collection, q)
}

func (s *timeoutStore) Get(ctx context.Context, collection, id string) (models.Document, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.next.Get(ctx, collection, id)
}

func (s *timeoutStore) Insert(ctx context.Context, collection string, data map[string]interface{}) (models.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.next.Insert(ctx, collection, data)
}

func (s *timeoutStore) Delete(ctx context.Context, collection, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.next.Delete(ctx, collection, id)
}

func (s *timeoutStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.next.Ping(ctx)
}

func (s *timeoutStore) Close() error { return s.next.Close() }
