// File: models/document.go
package models

import (
	"encoding/json"
	"math"
)

// Document is a schemaless record as handed out by the document store.
// The document id is kept apart from the stored fields.
type Document struct {
	ID   string
	Data map[string]interface{}
}

// NewDocument builds a document, never leaving Data nil.
func NewDocument(id string, data map[string]interface{}) Document {
	if data == nil {
		data = map[string]interface{}{}
	}
	return Document{ID: id, Data: data}
}

// MarshalJSON flattens the document into {"id": ..., <fields>}. A stored "id"
// field is spread over the document id.
func (d Document) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(d.Data)+1)
	out["id"] = d.ID
	for k, v := range d.Data {
		out[k] = v
	}
	return json.Marshal(out)
}

// Field returns the raw stored value.
func (d Document) Field(name string) (interface{}, bool) {
	if d.Data == nil {
		return nil, false
	}
	v, ok := d.Data[name]
	return v, ok
}

// StringField returns the field when it is stored as a string.
func (d Document) StringField(name string) (string, bool) {
	v, ok := d.Field(name)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// NumberField returns the field as a float64 for any numeric representation the
// backends decode into.
func (d Document) NumberField(name string) (float64, bool) {
	v, ok := d.Field(name)
	if !ok {
		return 0, false
	}
	return ToFloat(v)
}

// ToFloat converts the numeric kinds produced by firestore, mongo and
// encoding/json into a float64.
func ToFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		if math.IsNaN(n) {
			return 0, false
		}
		return n, true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
