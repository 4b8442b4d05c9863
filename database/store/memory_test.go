package store

import (
	"context"
	"testing"
	"time"

	"finalprojectapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(docs []models.Document) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.ID)
	}
	return out
}

func seededStore() *MemoryStore {
	m := NewMemoryStore()
	m.Seed("tables", "T1", map[string]interface{}{"capacity": 2})
	m.Seed("tables", "T2", map[string]interface{}{"capacity": int64(4)})
	m.Seed("tables", "T3", map[string]interface{}{"capacity": 6.0})
	m.Seed("tables", "T4", map[string]interface{}{"capacity": "8"})
	m.Seed("tables", "T5", map[string]interface{}{"seats": 10})
	return m
}

func TestMemoryFindAll(t *testing.T) {
	docs, err := seededStore().Find(context.Background(), "tables", Query{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"T1", "T2", "T3", "T4", "T5"}, ids(docs))
}

func TestMemoryFindGreaterEqualSkipsOtherKinds(t *testing.T) {
	q := Query{}.Where("capacity", OpGreaterEqual, int64(4))
	docs, err := seededStore().Find(context.Background(), "tables", q)
	require.NoError(t, err)
	// "8" is a string and T5 has no capacity at all.
	assert.ElementsMatch(t, []string{"T2", "T3"}, ids(docs))
}

func TestMemoryFindChainedEquality(t *testing.T) {
	m := NewMemoryStore()
	m.Seed("reservations", "R1", map[string]interface{}{"date": "2024-01-01", "time": "19:00"})
	m.Seed("reservations", "R2", map[string]interface{}{"date": "2024-01-01", "time": "20:00"})
	m.Seed("reservations", "R3", map[string]interface{}{"date": "2024-01-02", "time": "19:00"})

	q := Query{}.Where("date", OpEqual, "2024-01-01").Where("time", OpEqual, "19:00")
	docs, err := m.Find(context.Background(), "reservations", q)
	require.NoError(t, err)
	assert.Equal(t, []string{"R1"}, ids(docs))
}

func TestMemoryOrderAndLimit(t *testing.T) {
	m := NewMemoryStore()
	m.Seed("products", "b", map[string]interface{}{"rating": 4.8})
	m.Seed("products", "a", map[string]interface{}{"rating": 4.8})
	m.Seed("products", "c", map[string]interface{}{"rating": 4.9})
	m.Seed("products", "d", map[string]interface{}{"rating": 3.0})
	m.Seed("products", "e", map[string]interface{}{"name": "unrated"})

	q := Query{}.OrderBy("rating", Desc).OrderBy(IDField, Asc)
	docs, err := m.Find(context.Background(), "products", q)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b", "d"}, ids(docs))

	docs, err = m.Find(context.Background(), "products", q.WithLimit(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, ids(docs))
}

func TestMemoryQueryBuildersDoNotAlias(t *testing.T) {
	base := Query{}.Where("a", OpEqual, 1)
	q1 := base.Where("b", OpEqual, 2)
	q2 := base.Where("c", OpEqual, 3)
	assert.Len(t, base.Filters, 1)
	assert.Equal(t, "b", q1.Filters[1].Field)
	assert.Equal(t, "c", q2.Filters[1].Field)
}

func TestMemoryUnsupportedOp(t *testing.T) {
	_, err := NewMemoryStore().Find(context.Background(), "tables", Query{Filters: []Filter{{Field: "x", Op: "<", Value: 1}}})
	assert.ErrorIs(t, err, ErrUnsupportedOp)
}

func TestMemoryInsertStampsCreatedAt(t *testing.T) {
	m := NewMemoryStore()
	fixed := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return fixed }

	payload := map[string]interface{}{"tableId": "T1", "createdAt": "client value"}
	doc, err := m.Insert(context.Background(), "reservations", payload)
	require.NoError(t, err)
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, fixed, doc.Data["createdAt"])
	assert.Equal(t, "client value", payload["createdAt"], "caller payload must not be mutated")

	got, found, err := m.Get(context.Background(), "reservations", doc.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "T1", got.Data["tableId"])
	assert.Equal(t, fixed, got.Data["createdAt"])
}

func TestMemoryGetMissing(t *testing.T) {
	_, found, err := NewMemoryStore().Get(context.Background(), "tables", "nope")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryDeleteIsIdempotent(t *testing.T) {
	m := seededStore()
	ctx := context.Background()

	require.NoError(t, m.Delete(ctx, "tables", "T1"))
	require.NoError(t, m.Delete(ctx, "tables", "T1"))
	require.NoError(t, m.Delete(ctx, "missing-collection", "x"))

	_, found, err := m.Get(ctx, "tables", "T1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := seededStore().Find(ctx, "tables", Query{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompareValues(t *testing.T) {
	c, ok := compareValues(int64(4), 4.0)
	assert.True(t, ok)
	assert.Zero(t, c)

	_, ok = compareValues("4", 4)
	assert.False(t, ok)

	c, ok = compareValues("a", "b")
	assert.True(t, ok)
	assert.Negative(t, c)

	c, ok = compareValues(true, false)
	assert.True(t, ok)
	assert.Positive(t, c)
}
