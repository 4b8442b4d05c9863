// File: database/store/firestore.go
package store

import (
	"context"
	"errors"
	"fmt"

	"finalprojectapi/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore is the production backend: one Firestore collection per
// entity, documents addressed by their Firestore id.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) Find(ctx context.Context, collection string, q Query) ([]models.Document, error) {
	query, err := s.buildQuery(collection, q)
	if err != nil {
		return nil, err
	}
	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("firestore: query %s: %w", collection, err)
	}
	docs := make([]models.Document, 0, len(snaps))
	for _, snap := range snaps {
		docs = append(docs, models.NewDocument(snap.Ref.ID, snap.Data()))
	}
	return docs, nil
}

func (s *FirestoreStore) buildQuery(collection string, q Query) (firestore.Query, error) {
	if err := validate(q); err != nil {
		return firestore.Query{}, err
	}
	query := s.client.Collection(collection).Query
	for _, f := range q.Filters {
		query = query.Where(firestorePath(f.Field), string(f.Op), f.Value)
	}
	for _, o := range q.Orders {
		dir := firestore.Asc
		if o.Direction == Desc {
			dir = firestore.Desc
		}
		query = query.OrderBy(firestorePath(o.Field), dir)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}
	return query, nil
}

func firestorePath(field string) string {
	if field == IDField {
		return firestore.DocumentID
	}
	return field
}

func (s *FirestoreStore) Get(ctx context.Context, collection, id string) (models.Document, bool, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return models.Document{}, false, nil
		}
		return models.Document{}, false, fmt.Errorf("firestore: get %s/%s: %w", collection, id, err)
	}
	if !snap.Exists() {
		return models.Document{}, false, nil
	}
	return models.NewDocument(snap.Ref.ID, snap.Data()), true, nil
}

// Insert writes with a ServerTimestamp sentinel; the returned document carries
// the commit time, which is the value Firestore resolves the sentinel to.
func (s *FirestoreStore) Insert(ctx context.Context, collection string, data map[string]interface{}) (models.Document, error) {
	payload := copyData(data)
	payload[models.FieldCreatedAt] = firestore.ServerTimestamp

	ref := s.client.Collection(collection).NewDoc()
	res, err := ref.Create(ctx, payload)
	if err != nil {
		return models.Document{}, fmt.Errorf("firestore: insert into %s: %w", collection, err)
	}
	payload[models.FieldCreatedAt] = res.UpdateTime
	return models.NewDocument(ref.ID, payload), nil
}

func (s *FirestoreStore) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("firestore: delete %s/%s: %w", collection, id, err)
	}
	return nil
}

// Ping lists at most one collection id to prove the credentials work.
func (s *FirestoreStore) Ping(ctx context.Context) error {
	it := s.client.Collections(ctx)
	if _, err := it.Next(); err != nil && !errors.Is(err, iterator.Done) {
		return fmt.Errorf("firestore: ping: %w", err)
	}
	return nil
}

func (s *FirestoreStore) Close() error {
	return s.client.Close()
}
