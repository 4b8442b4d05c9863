// File: database/repository/table/queries.go
package tableRepo

import (
	"context"
	"fmt"

	"finalprojectapi/database/store"
	"finalprojectapi/models"
)

func (r *storeTableRepo) GetAll(ctx context.Context) ([]models.Table, error) {
	docs, err := r.store.Find(ctx, models.TablesCollection, store.Query{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tables: %w", err)
	}
	return models.TablesFrom(docs), nil
}

func (r *storeTableRepo) GetByID(ctx context.Context, id string) (models.Table, bool, error) {
	doc, found, err := r.store.Get(ctx, models.TablesCollection, id)
	if err != nil {
		return models.Table{}, false, fmt.Errorf("failed to fetch table %s: %w", id, err)
	}
	return models.Table{Document: doc}, found, nil
}

// GetWithMinCapacity pushes the capacity bound to the store as capacity >= n.
func (r *storeTableRepo) GetWithMinCapacity(ctx context.Context, capacity int64) ([]models.Table, error) {
	q := store.Query{}.Where(models.FieldCapacity, store.OpGreaterEqual, capacity)
	docs, err := r.store.Find(ctx, models.TablesCollection, q)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tables with capacity >= %d: %w", capacity, err)
	}
	return models.TablesFrom(docs), nil
}
