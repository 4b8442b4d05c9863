package reservation

import (
	"context"

	"finalprojectapi/database/store"
	"finalprojectapi/models"

	"github.com/stretchr/testify/mock"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Find(ctx context.Context, collection string, q store.Query) ([]models.Document, error) {
	args := m.Called(ctx, collection, q)
	docs, _ := args.Get(0).([]models.Document)
	return docs, args.Error(1)
}

func (m *mockStore) Get(ctx context.Context, collection, id string) (models.Document, bool, error) {
	args := m.Called(ctx, collection, id)
	doc, _ := args.Get(0).(models.Document)
	return doc, args.Bool(1), args.Error(2)
}

func (m *mockStore) Insert(ctx context.Context, collection string, data map[string]interface{}) (models.Document, error) {
	args := m.Called(ctx, collection, data)
	doc, _ := args.Get(0).(models.Document)
	return doc, args.Error(1)
}

func (m *mockStore) Delete(ctx context.Context, collection, id string) error {
	return m.Called(ctx, collection, id).Error(0)
}

func (m *mockStore) Ping(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *mockStore) Close() error { return nil }
