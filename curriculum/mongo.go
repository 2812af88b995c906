package curriculum

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoSource reads techniques from a MongoDB collection.
type MongoSource struct {
	skipCounter
	client *mongo.Client
	coll   *mongo.Collection
}

// ConnectMongo dials uri and verifies the connection before returning.
func ConnectMongo(ctx context.Context, uri, database, collection string) (*MongoSource, error) {
	if collection == "" {
		collection = DefaultCollection
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return &MongoSource{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}, nil
}

// eligibleQuery matches documents whose group is set and is not OtherGroup.
func eligibleQuery() bson.M {
	return bson.M{"group": bson.M{"$nin": bson.A{"", nil, OtherGroup}}}
}

func (s *MongoSource) Techniques(ctx context.Context) ([]Technique, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "name", Value: 1}})
	cur, err := s.coll.Find(ctx, eligibleQuery(), opts)
	if err != nil {
		return nil, fmt.Errorf("find techniques: %w", err)
	}
	defer cur.Close(ctx)

	s.resetSkipped()
	return decodeTechniques(ctx, cur, &s.skipCounter)
}

// documents is the part of *mongo.Cursor used to read results.
type documents interface {
	Next(ctx context.Context) bool
	Decode(v any) error
	Err() error
}

// decodeTechniques decodes one document at a time, skipping those that do
// not fit Technique.
func decodeTechniques(ctx context.Context, cur documents, skipped *skipCounter) ([]Technique, error) {
	var out []Technique
	for cur.Next(ctx) {
		var t Technique
		if err := cur.Decode(&t); err != nil {
			skipped.skip()
			continue
		}
		out = append(out, t)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("read techniques: %w", err)
	}
	return out, nil
}

func (s *MongoSource) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
