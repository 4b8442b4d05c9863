// File: database/store/store.go
package store

import (
	"context"
	"errors"

	"finalprojectapi/models"
)

// Op is a filter predicate supported by every backend.
type Op string

const (
	OpEqual        Op = "=="
	OpGreaterEqual Op = ">="
)

// IDField is the pseudo-field that addresses the document id in orders.
const IDField = "id"

type Direction int

const (
	Asc Direction = iota
	Desc
)

type Filter struct {
	Field string
	Op    Op
	Value interface{}
}

type Order struct {
	Field     string
	Direction Direction
}

// Query is a conjunction of filters with optional ordering and limit.
// A zero Limit means unlimited.
type Query struct {
	Filters []Filter
	Orders  []Order
	Limit   int
}

// Where appends an equality or range predicate.
func (q Query) Where(field string, op Op, value interface{}) Query {
	q.Filters = append(append([]Filter(nil), q.Filters...), Filter{Field: field, Op: op, Value: value})
	return q
}

func (q Query) OrderBy(field string, dir Direction) Query {
	q.Orders = append(append([]Order(nil), q.Orders...), Order{Field: field, Direction: dir})
	return q
}

func (q Query) WithLimit(n int) Query {
	q.Limit = n
	return q
}

// ErrUnsupportedOp is returned for predicates outside Op.
var ErrUnsupportedOp = errors.New("store: unsupported filter operator")

// DocumentStore is the persistent collection collaborator shared by every
// repository.
type DocumentStore interface {
	// Find returns the documents of collection matching q.
	Find(ctx context.Context, collection string, q Query) ([]models.Document, error)
	// Get fetches one document; the bool reports existence.
	Get(ctx context.Context, collection, id string) (models.Document, bool, error)
	// Insert stores data under a new id and stamps models.FieldCreatedAt with
	// the server time.
	Insert(ctx context.Context, collection string, data map[string]interface{}) (models.Document, error)
	// Delete removes a document. Deleting an absent id succeeds.
	Delete(ctx context.Context, collection, id string) error
	Ping(ctx context.Context) error
	Close() error
}

func validate(q Query) error {
	for _, f := range q.Filters {
		if f.Op != OpEqual && f.Op != OpGreaterEqual {
			return ErrUnsupportedOp
		}
	}
	return nil
}

func copyData(data map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(data)+1)
	for k, v := range data {
		out[k] = v
	}
	return out
}
