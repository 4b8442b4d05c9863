package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentMarshalJSONFlattensFields(t *testing.T) {
	doc := NewDocument("T1", map[string]interface{}{"capacity": 4})

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "T1", out["id"])
	assert.EqualValues(t, 4, out["capacity"])
}

func TestDocumentMarshalJSONStoredIDFieldWins(t *testing.T) {
	doc := NewDocument("T1", map[string]interface{}{"capacity": 4, "id": "legacy-7"})

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"legacy-7","capacity":4}`, string(raw))
	assert.Equal(t, "T1", doc.ID)
}

func TestEmbeddedDocumentsMarshalFlat(t *testing.T) {
	tables := []Table{{Document: NewDocument("T1", map[string]interface{}{"capacity": int64(2)})}}

	raw, err := json.Marshal(tables)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"T1","capacity":2}]`, string(raw))
}

func TestToFloat(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want float64
		ok   bool
	}{
		{"int", 3, 3, true},
		{"int32", int32(5), 5, true},
		{"int64", int64(7), 7, true},
		{"float64", 4.7, 4.7, true},
		{"json number", json.Number("4.9"), 4.9, true},
		{"bad json number", json.Number("x"), 0, false},
		{"string", "4", 0, false},
		{"nil", nil, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ToFloat(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestTypedAccessors(t *testing.T) {
	table := Table{Document: NewDocument("T1", map[string]interface{}{"capacity": 4.0})}
	c, ok := table.Capacity()
	assert.True(t, ok)
	assert.Equal(t, int64(4), c)

	_, ok = Table{Document: NewDocument("T2", nil)}.Capacity()
	assert.False(t, ok)

	r := Reservation{Document: NewDocument("R1", map[string]interface{}{
		"tableId": "T1", "date": "2024-01-01", "time": "19:00",
	})}
	assert.Equal(t, "T1", r.TableID())
	assert.Equal(t, "2024-01-01", r.Date())
	assert.Equal(t, "19:00", r.Time())
	assert.Empty(t, Reservation{Document: NewDocument("R2", nil)}.TableID())

	p := Product{Document: NewDocument("P1", map[string]interface{}{"name": "Apple", "rating": int64(5)})}
	name, ok := p.Name()
	assert.True(t, ok)
	assert.Equal(t, "Apple", name)
	_, ok = p.Description()
	assert.False(t, ok)
	assert.Equal(t, 5.0, p.Rating())

	unnamed := Product{Document: NewDocument("P2", map[string]interface{}{"name": 12})}
	_, ok = unnamed.Name()
	assert.False(t, ok)
}
