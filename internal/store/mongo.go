package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Caiismith/videogame-api/internal/model"
)

// MongoGameStore implements GameStore against a MongoDB collection.
type MongoGameStore struct {
	collection *mongo.Collection
}

// NewMongoGameStore creates a new MongoGameStore instance.
func NewMongoGameStore(coll *mongo.Collection) *MongoGameStore {
	return &MongoGameStore{collection: coll}
}

func (s *MongoGameStore) Insert(ctx context.Context, game *model.Game) error {
	if _, err := s.collection.InsertOne(ctx, game); err != nil {
		return fmt.Errorf("failed to insert game: %w", err)
	}
	return nil
}

func (s *MongoGameStore) FindAll(ctx context.Context) ([]model.Game, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %w", err)
	}
	defer cursor.Close(ctx)

	var games []model.Game
	if err := cursor.All(ctx, &games); err != nil {
		return nil, fmt.Errorf("failed to decode games: %w", err)
	}
	return games, nil
}

func (s *MongoGameStore) FindByID(ctx context.Context, id string) (*model.Game, error) {
	var game model.Game
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&game)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game: %w", err)
	}
	return &game, nil
}

func (s *MongoGameStore) Save(ctx context.Context, game *model.Game) error {
	result, err := s.collection.ReplaceOne(ctx, bson.M{"_id": game.ID}, game)
	if err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoGameStore) DeleteByID(ctx context.Context, id string) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoGameStore) DeleteAll(ctx context.Context) error {
	if _, err := s.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to delete games: %w", err)
	}
	return nil
}

// MongoDeveloperStore implements DeveloperStore against a MongoDB collection.
type MongoDeveloperStore struct {
	collection *mongo.Collection
}

// NewMongoDeveloperStore creates a new MongoDeveloperStore instance.
func NewMongoDeveloperStore(coll *mongo.Collection) *MongoDeveloperStore {
	return &MongoDeveloperStore{collection: coll}
}

func (s *MongoDeveloperStore) Insert(ctx context.Context, developer *model.Developer) error {
	if _, err := s.collection.InsertOne(ctx, developer); err != nil {
		return fmt.Errorf("failed to insert developer: %w", err)
	}
	return nil
}

func (s *MongoDeveloperStore) FindAll(ctx context.Context) ([]model.Developer, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query developers: %w", err)
	}
	defer cursor.Close(ctx)

	var developers []model.Developer
	if err := cursor.All(ctx, &developers); err != nil {
		return nil, fmt.Errorf("failed to decode developers: %w", err)
	}
	return developers, nil
}

func (s *MongoDeveloperStore) DeleteAll(ctx context.Context) error {
	if _, err := s.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to delete developers: %w", err)
	}
	return nil
}
