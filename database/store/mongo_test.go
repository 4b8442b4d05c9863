package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMongoFilterEmpty(t *testing.T) {
	f, err := mongoFilter(Query{})
	require.NoError(t, err)
	assert.Equal(t, bson.M{}, f)
}

func TestMongoFilterSinglePredicate(t *testing.T) {
	f, err := mongoFilter(Query{}.Where("capacity", OpGreaterEqual, int64(4)))
	require.NoError(t, err)
	assert.Equal(t, bson.M{"capacity": bson.M{"$gte": int64(4)}}, f)
}

func TestMongoFilterConjunctionWithOrderExistence(t *testing.T) {
	q := Query{}.
		Where("rating", OpGreaterEqual, 4.7).
		OrderBy("rating", Desc).
		OrderBy(IDField, Asc)
	f, err := mongoFilter(q)
	require.NoError(t, err)
	assert.Equal(t, bson.M{"$and": bson.A{
		bson.M{"rating": bson.M{"$gte": 4.7}},
		bson.M{"rating": bson.M{"$exists": true}},
	}}, f)

	assert.Equal(t, bson.D{{Key: "rating", Value: -1}, {Key: "_id", Value: 1}}, mongoSort(q.Orders))
}

func TestMongoFilterMapsIDField(t *testing.T) {
	f, err := mongoFilter(Query{}.Where(IDField, OpEqual, "abc"))
	require.NoError(t, err)
	assert.Equal(t, bson.M{"_id": "abc"}, f)
}

func TestMongoFilterRejectsUnknownOp(t *testing.T) {
	_, err := mongoFilter(Query{Filters: []Filter{{Field: "a", Op: "!=", Value: 1}}})
	assert.ErrorIs(t, err, ErrUnsupportedOp)
}

func TestFromBSON(t *testing.T) {
	at := time.Date(2024, 1, 1, 19, 0, 0, 0, time.UTC)
	oid := primitive.NewObjectID()

	doc := fromBSON(bson.M{"_id": "R1", "tableId": "T1", "createdAt": primitive.NewDateTimeFromTime(at)})
	assert.Equal(t, "R1", doc.ID)
	assert.Equal(t, "T1", doc.Data["tableId"])
	assert.Equal(t, at, doc.Data["createdAt"])
	_, hasID := doc.Data["_id"]
	assert.False(t, hasID)

	assert.Equal(t, oid.Hex(), fromBSON(bson.M{"_id": oid}).ID)
}
