package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "Blobs"

type blobDocument struct {
	Key  string `bson:"_id"`
	Data []byte `bson:"data"`
}

// MongoStore persists each blob as a single document keyed by blob name.
type MongoStore struct {
	collection *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{collection: db.Collection(CollectionName)}
}

func (s *MongoStore) Load(ctx context.Context, key string) ([]byte, error) {
	var doc blobDocument
	err := s.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load blob %s: %w", key, err)
	}
	return doc.Data, nil
}

func (s *MongoStore) Save(ctx context.Context, key string, data []byte) error {
	opts := options.Replace().SetUpsert(true)
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": key}, blobDocument{Key: key, Data: data}, opts)
	if err != nil {
		return fmt.Errorf("failed to save blob %s: %w", key, err)
	}
	return nil
}
