package store

import (
	"context"
	"errors"

	"github.com/Caiismith/videogame-api/internal/model"
)

// ErrNotFound is returned when a lookup matches no record.
var ErrNotFound = errors.New("record not found")

// GameStore defines persistence operations on games.
// Implemented by MongoGameStore and MemoryGameStore.
type GameStore interface {
	Insert(ctx context.Context, game *model.Game) error
	FindAll(ctx context.Context) ([]model.Game, error)

	// FindByID returns ErrNotFound when no game has the given id.
	FindByID(ctx context.Context, id string) (*model.Game, error)

	// Save replaces the stored game with the same id.
	Save(ctx context.Context, game *model.Game) error

	DeleteByID(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

// DeveloperStore defines persistence operations on approved developers.
// Developer records are only written by the allow-list bootstrap.
type DeveloperStore interface {
	Insert(ctx context.Context, developer *model.Developer) error
	FindAll(ctx context.Context) ([]model.Developer, error)
	DeleteAll(ctx context.Context) error
}
