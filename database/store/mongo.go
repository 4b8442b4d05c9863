// File: database/store/mongo.go
package store

import (
	"context"
	"errors"
	"fmt"

	"finalprojectapi/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore maps each collection onto a MongoDB collection keyed by a string _id.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	return &MongoStore{client: client, db: client.Database(database)}
}

func (s *MongoStore) Find(ctx context.Context, collection string, q Query) ([]models.Document, error) {
	filter, err := mongoFilter(q)
	if err != nil {
		return nil, err
	}
	opts := options.Find()
	if sortSpec := mongoSort(q.Orders); len(sortSpec) > 0 {
		opts.SetSort(sortSpec)
	}
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}

	cursor, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo: find in %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("mongo: decode %s: %w", collection, err)
	}
	docs := make([]models.Document, 0, len(raw))
	for _, m := range raw {
		docs = append(docs, fromBSON(m))
	}
	return docs, nil
}

func (s *MongoStore) Get(ctx context.Context, collection, id string) (models.Document, bool, error) {
	var raw bson.M
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&raw)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Document{}, false, nil
		}
		return models.Document{}, false, fmt.Errorf("mongo: get %s/%s: %w", collection, id, err)
	}
	return fromBSON(raw), true, nil
}

// Insert upserts under a fresh id so the server fills createdAt via
// $currentDate, then reads the stored document back.
func (s *MongoStore) Insert(ctx context.Context, collection string, data map[string]interface{}) (models.Document, error) {
	id := uuid.New().String()
	payload := copyData(data)
	delete(payload, "_id")
	delete(payload, models.FieldCreatedAt)

	update := bson.M{"$currentDate": bson.M{models.FieldCreatedAt: true}}
	if len(payload) > 0 {
		update["$setOnInsert"] = payload
	}
	coll := s.db.Collection(collection)
	if _, err := coll.UpdateOne(ctx, bson.M{"_id": id}, update, options.Update().SetUpsert(true)); err != nil {
		return models.Document{}, fmt.Errorf("mongo: insert into %s: %w", collection, err)
	}

	doc, found, err := s.Get(ctx, collection, id)
	if err != nil {
		return models.Document{}, err
	}
	if !found {
		return models.Document{}, fmt.Errorf("mongo: inserted document %s/%s not readable", collection, id)
	}
	return doc, nil
}

func (s *MongoStore) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("mongo: delete %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

func mongoField(field string) string {
	if field == IDField {
		return "_id"
	}
	return field
}

// mongoFilter translates the query predicates. Order fields must exist so
// that documents lacking them drop out as they do in Firestore.
func mongoFilter(q Query) (bson.M, error) {
	if err := validate(q); err != nil {
		return nil, err
	}
	var conds bson.A
	for _, f := range q.Filters {
		field := mongoField(f.Field)
		switch f.Op {
		case OpEqual:
			conds = append(conds, bson.M{field: f.Value})
		case OpGreaterEqual:
			conds = append(conds, bson.M{field: bson.M{"$gte": f.Value}})
		}
	}
	for _, o := range q.Orders {
		if o.Field == IDField {
			continue
		}
		conds = append(conds, bson.M{o.Field: bson.M{"$exists": true}})
	}

	switch len(conds) {
	case 0:
		return bson.M{}, nil
	case 1:
		return conds[0].(bson.M), nil
	}
	return bson.M{"$and": conds}, nil
}

func mongoSort(orders []Order) bson.D {
	var spec bson.D
	for _, o := range orders {
		dir := 1
		if o.Direction == Desc {
			dir = -1
		}
		spec = append(spec, bson.E{Key: mongoField(o.Field), Value: dir})
	}
	return spec
}

func fromBSON(m bson.M) models.Document {
	var id string
	switch v := m["_id"].(type) {
	case string:
		id = v
	case primitive.ObjectID:
		id = v.Hex()
	default:
		id = fmt.Sprint(v)
	}
	data := make(map[string]interface{}, len(m))
	for k, v := range m {
		if k == "_id" {
			continue
		}
		if dt, ok := v.(primitive.DateTime); ok {
			data[k] = dt.Time().UTC()
			continue
		}
		data[k] = v
	}
	return models.NewDocument(id, data)
}
