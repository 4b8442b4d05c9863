// File: database/store/memory.go
package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"finalprojectapi/models"

	"github.com/google/uuid"
)

// MemoryStore keeps collections in process memory. It backs tests and the
// "memory" driver used for local runs without cloud credentials.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]map[string]interface{}
	now         func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string]map[string]map[string]interface{}),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Seed writes a document under a fixed id, replacing any previous one.
func (m *MemoryStore) Seed(collection, id string, data map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.coll(collection)[id] = copyData(data)
}

func (m *MemoryStore) coll(name string) map[string]map[string]interface{} {
	c, ok := m.collections[name]
	if !ok {
		c = make(map[string]map[string]interface{})
		m.collections[name] = c
	}
	return c
}

func (m *MemoryStore) Find(ctx context.Context, collection string, q Query) ([]models.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validate(q); err != nil {
		return nil, err
	}

	m.mu.RLock()
	var docs []models.Document
	for id, data := range m.collections[collection] {
		doc := models.NewDocument(id, copyData(data))
		if matchesAll(doc, q.Filters) && hasOrderFields(doc, q.Orders) {
			docs = append(docs, doc)
		}
	}
	m.mu.RUnlock()

	sortDocuments(docs, q.Orders)
	if q.Limit > 0 && len(docs) > q.Limit {
		docs = docs[:q.Limit]
	}
	return docs, nil
}

func (m *MemoryStore) Get(ctx context.Context, collection, id string) (models.Document, bool, error) {
	if err := ctx.Err(); err != nil {
		return models.Document{}, false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.collections[collection][id]
	if !ok {
		return models.Document{}, false, nil
	}
	return models.NewDocument(id, copyData(data)), true, nil
}

func (m *MemoryStore) Insert(ctx context.Context, collection string, data map[string]interface{}) (models.Document, error) {
	if err := ctx.Err(); err != nil {
		return models.Document{}, err
	}
	stored := copyData(data)
	stored[models.FieldCreatedAt] = m.now()
	id := uuid.New().String()

	m.mu.Lock()
	m.coll(collection)[id] = stored
	m.mu.Unlock()

	return models.NewDocument(id, copyData(stored)), nil
}

func (m *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.collections[collection], id)
	return nil
}

func (m *MemoryStore) Ping(ctx context.Context) error { return ctx.Err() }

func (m *MemoryStore) Close() error { return nil }

func fieldValue(doc models.Document, field string) (interface{}, bool) {
	if field == IDField {
		return doc.ID, true
	}
	return doc.Field(field)
}

func matchesAll(doc models.Document, filters []Filter) bool {
	for _, f := range filters {
		v, ok := fieldValue(doc, f.Field)
		if !ok {
			return false
		}
		c, ok := compareValues(v, f.Value)
		if !ok {
			return false
		}
		switch f.Op {
		case OpEqual:
			if c != 0 {
				return false
			}
		case OpGreaterEqual:
			if c < 0 {
				return false
			}
		}
	}
	return true
}

func hasOrderFields(doc models.Document, orders []Order) bool {
	for _, o := range orders {
		if _, ok := fieldValue(doc, o.Field); !ok {
			return false
		}
	}
	return true
}

// sortDocuments applies the orders and breaks remaining ties by id so results
// are stable across calls.
func sortDocuments(docs []models.Document, orders []Order) {
	sort.SliceStable(docs, func(i, j int) bool {
		for _, o := range orders {
			a, _ := fieldValue(docs[i], o.Field)
			b, _ := fieldValue(docs[j], o.Field)
			c, ok := compareValues(a, b)
			if !ok {
				c = typeRank(a) - typeRank(b)
			}
			if c == 0 {
				continue
			}
			if o.Direction == Desc {
				return c > 0
			}
			return c < 0
		}
		return docs[i].ID < docs[j].ID
	})
}

// compareValues orders two values of the same kind. Values of different kinds
// are not comparable, so they never satisfy a filter.
func compareValues(a, b interface{}) (int, bool) {
	if fa, ok := models.ToFloat(a); ok {
		fb, ok := models.ToFloat(b)
		if !ok {
			return 0, false
		}
		switch {
		case fa < fb:
			return -1, true
		case fa > fb:
			return 1, true
		}
		return 0, true
	}
	switch x := a.(type) {
	case string:
		y, ok := b.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(x, y), true
	case bool:
		y, ok := b.(bool)
		if !ok {
			return 0, false
		}
		switch {
		case x == y:
			return 0, true
		case !x:
			return -1, true
		}
		return 1, true
	case time.Time:
		y, ok := b.(time.Time)
		if !ok {
			return 0, false
		}
		return x.Compare(y), true
	}
	return 0, false
}

func typeRank(v interface{}) int {
	if _, ok := models.ToFloat(v); ok {
		return 1
	}
	switch v.(type) {
	case bool:
		return 0
	case time.Time:
		return 2
	case string:
		return 3
	}
	return 4
}
