package store

import (
	"context"
	"sync"

	"github.com/Caiismith/videogame-api/internal/model"
)

// MemoryGameStore provides in-memory game storage for tests and local runs.
type MemoryGameStore struct {
	mu    sync.RWMutex
	games map[string]model.Game
	order []string

	// FailWith, when set, is returned by every operation. Used by tests to
	// simulate a store outage.
	FailWith error
}

// NewMemoryGameStore creates a new in-memory game store.
func NewMemoryGameStore() *MemoryGameStore {
	return &MemoryGameStore{games: make(map[string]model.Game)}
}

func (s *MemoryGameStore) Insert(ctx context.Context, game *model.Game) error {
	if s.FailWith != nil {
		return s.FailWith
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[game.ID]; !exists {
		s.order = append(s.order, game.ID)
	}
	s.games[game.ID] = *game
	return nil
}

func (s *MemoryGameStore) FindAll(ctx context.Context) ([]model.Game, error) {
	if s.FailWith != nil {
		return nil, s.FailWith
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	games := make([]model.Game, 0, len(s.games))
	for _, id := range s.order {
		games = append(games, s.games[id])
	}
	return games, nil
}

func (s *MemoryGameStore) FindByID(ctx context.Context, id string) (*model.Game, error) {
	if s.FailWith != nil {
		return nil, s.FailWith
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	game, exists := s.games[id]
	if !exists {
		return nil, ErrNotFound
	}
	return &game, nil
}

func (s *MemoryGameStore) Save(ctx context.Context, game *model.Game) error {
	if s.FailWith != nil {
		return s.FailWith
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[game.ID]; !exists {
		return ErrNotFound
	}
	s.games[game.ID] = *game
	return nil
}

func (s *MemoryGameStore) DeleteByID(ctx context.Context, id string) error {
	if s.FailWith != nil {
		return s.FailWith
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[id]; !exists {
		return ErrNotFound
	}
	delete(s.games, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryGameStore) DeleteAll(ctx context.Context) error {
	if s.FailWith != nil {
		return s.FailWith
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = make(map[string]model.Game)
	s.order = nil
	return nil
}

// MemoryDeveloperStore provides in-memory developer storage for tests and
// local runs.
type MemoryDeveloperStore struct {
	mu         sync.RWMutex
	developers []model.Developer

	FailWith error
}

// NewMemoryDeveloperStore creates a new in-memory developer store.
func NewMemoryDeveloperStore() *MemoryDeveloperStore {
	return &MemoryDeveloperStore{}
}

func (s *MemoryDeveloperStore) Insert(ctx context.Context, developer *model.Developer) error {
	if s.FailWith != nil {
		return s.FailWith
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.developers = append(s.developers, *developer)
	return nil
}

func (s *MemoryDeveloperStore) FindAll(ctx context.Context) ([]model.Developer, error) {
	if s.FailWith != nil {
		return nil, s.FailWith
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	developers := make([]model.Developer, len(s.developers))
	copy(developers, s.developers)
	return developers, nil
}

func (s *MemoryDeveloperStore) DeleteAll(ctx context.Context) error {
	if s.FailWith != nil {
		return s.FailWith
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.developers = nil
	return nil
}
