package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect builds a Mongo client for the given connection string and
// verifies reachability with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging mongo: %w", err)
	}

	return client, nil
}

// mongoPrimary adapts a Mongo collection to the Primary interface.
// Documents are matched on their domain `id` field and the driver's `_id`
// is projected out of every read so records round-trip cleanly to JSON.
type mongoPrimary[ID comparable, T any] struct {
	coll *mongo.Collection
}

func NewMongoPrimary[ID comparable, T any](coll *mongo.Collection) Primary[ID, T] {
	return mongoPrimary[ID, T]{coll: coll}
}

func (p mongoPrimary[ID, T]) List(ctx context.Context) ([]T, error) {
	cursor, err := p.coll.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"_id": 0}))
	if err != nil {
		return nil, err
	}

	var records []T
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (p mongoPrimary[ID, T]) Find(ctx context.Context, id ID) (T, bool, error) {
	var record T
	err := p.coll.FindOne(ctx, bson.M{"id": id}, options.FindOne().SetProjection(bson.M{"_id": 0})).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return record, false, nil
	}
	if err != nil {
		return record, false, err
	}
	return record, true, nil
}

func (p mongoPrimary[ID, T]) Insert(ctx context.Context, record T) error {
	_, err := p.coll.InsertOne(ctx, record)
	return err
}

func (p mongoPrimary[ID, T]) Replace(ctx context.Context, id ID, record T) (bool, error) {
	result, err := p.coll.ReplaceOne(ctx, bson.M{"id": id}, record)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

func (p mongoPrimary[ID, T]) Delete(ctx context.Context, id ID) (bool, error) {
	result, err := p.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

func (p mongoPrimary[ID, T]) Reset(ctx context.Context, records []T) error {
	if _, err := p.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	docs := make([]interface{}, len(records))
	for i, record := range records {
		docs[i] = record
	}
	_, err := p.coll.InsertMany(ctx, docs)
	return err
}
