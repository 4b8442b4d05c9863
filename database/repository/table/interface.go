// File: database/repository/table/interface.go
package tableRepo

import (
	"context"

	"finalprojectapi/database/store"
	"finalprojectapi/models"
)

type TableRepository interface {
	GetAll(ctx context.Context) ([]models.Table, error)
	GetByID(ctx context.Context, id string) (models.Table, bool, error)
	GetWithMinCapacity(ctx context.Context, capacity int64) ([]models.Table, error)
}

type storeTableRepo struct {
	store store.DocumentStore
}

// NewTableRepo constructs a TableRepository over the "tables" collection.
func NewTableRepo(ds store.DocumentStore) TableRepository {
	return &storeTableRepo{store: ds}
}
