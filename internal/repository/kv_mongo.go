package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/CinemaDistrict/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type kvDocument struct {
	Key       string    `bson:"_id"`
	Value     []byte    `bson:"value"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

type MongoKVStore struct {
	entries *mongo.Collection
}

func NewMongoKVStore(m *Mongo) *MongoKVStore {
	return &MongoKVStore{entries: m.collection(kvCollection)}
}

func (s *MongoKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	var doc kvDocument
	if err := s.entries.FindOne(ctx, bson.M{"_id": key}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrKeyNotFound
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return doc.Value, nil
}

func (s *MongoKVStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.entries.UpdateOne(ctx,
		bson.M{"_id": key},
		bson.M{"$set": bson.M{"value": value, "updatedAt": time.Now().UTC()}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *MongoKVStore) Remove(ctx context.Context, key string) error {
	if _, err := s.entries.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}
