package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Caiismith/videogame-api/internal/model"
	"github.com/Caiismith/videogame-api/internal/store"
	"github.com/Caiismith/videogame-api/pkg/logger"
	"github.com/Caiismith/videogame-api/pkg/metrics"
)

// GameService orchestrates game CRUD against the game store, applying the
// developer allow-list check on creation and the ownership check on update
// and delete.
type GameService struct {
	logger     *logger.Logger
	games      store.GameStore
	developers store.DeveloperStore
}

// NewGameService creates a new GameService instance.
func NewGameService(l *logger.Logger, games store.GameStore, developers store.DeveloperStore) *GameService {
	return &GameService{
		logger:     l,
		games:      games,
		developers: developers,
	}
}

// Create inserts a new game after checking the developer against the
// allow-list. The id is assigned here; a client-supplied id is ignored.
func (s *GameService) Create(ctx context.Context, game *model.Game) Outcome {
	s.logger.Info("checking if posted developer is authorised", zap.String("developer", game.Developer))

	approved, err := s.developerApproved(ctx, game.Developer)
	if err != nil {
		metrics.StoreErrorsTotal.Inc()
		return dataError(fmt.Errorf("failed to check developer approval: %w", err))
	}
	if !approved {
		s.logger.Info("developer is not part of the authorised list", zap.String("developer", game.Developer))
		metrics.AuthorizationDenialsTotal.Inc()
		return unauthorized()
	}

	game.ID = uuid.New().String()
	if err := s.games.Insert(ctx, game); err != nil {
		metrics.StoreErrorsTotal.Inc()
		return dataError(fmt.Errorf("failed to insert game: %w", err))
	}

	s.logger.Info("game created", zap.String("game_id", game.ID))
	metrics.GamesCreatedTotal.Inc()
	return created(mapGameResponse(game))
}

// GetAll retrieves every stored game. Returns NotFound when the store is
// empty.
func (s *GameService) GetAll(ctx context.Context) Outcome {
	games, err := s.games.FindAll(ctx)
	if err != nil {
		metrics.StoreErrorsTotal.Inc()
		return dataError(fmt.Errorf("failed to retrieve games: %w", err))
	}
	if len(games) == 0 {
		s.logger.Info("no games found")
		return notFound()
	}

	s.logger.Info("returning all games", zap.Int("count", len(games)))
	return okList(mapGameListResponse(games))
}

// Get retrieves a single game by id. A missing id returns NotFound.
func (s *GameService) Get(ctx context.Context, id string) Outcome {
	game, err := s.games.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		s.logger.Info("no game returned", zap.String("game_id", id))
		return notFound()
	}
	if err != nil {
		metrics.StoreErrorsTotal.Inc()
		return dataError(fmt.Errorf("failed to retrieve game: %w", err))
	}

	s.logger.Info("returning game", zap.String("game_id", id))
	return ok(mapGameResponse(game))
}

// Update replaces the mutable fields of an existing game. The caller-asserted
// developer must match the stored record's developer; the id never changes.
func (s *GameService) Update(ctx context.Context, newGame *model.Game, developer, id string) Outcome {
	game, err := s.games.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		s.logger.Info("no game returned", zap.String("game_id", id))
		return notFound()
	}
	if err != nil {
		metrics.StoreErrorsTotal.Inc()
		return dataError(fmt.Errorf("failed to retrieve game: %w", err))
	}

	if !strings.EqualFold(developer, game.Developer) {
		s.logger.Info("unauthorised developer - unable to update game",
			zap.String("game_id", id), zap.String("developer", developer))
		metrics.AuthorizationDenialsTotal.Inc()
		return unauthorized()
	}

	game.Title = newGame.Title
	game.Genres = newGame.Genres
	game.Developer = newGame.Developer
	game.ReleaseDate = newGame.ReleaseDate

	if err := s.games.Save(ctx, game); err != nil {
		metrics.StoreErrorsTotal.Inc()
		return dataError(fmt.Errorf("failed to update game: %w", err))
	}

	s.logger.Info("game updated", zap.String("game_id", id))
	return noContent()
}

// Delete removes an existing game. The caller-asserted developer must match
// the stored record's developer.
func (s *GameService) Delete(ctx context.Context, developer, id string) Outcome {
	game, err := s.games.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		s.logger.Info("no game returned", zap.String("game_id", id))
		return notFound()
	}
	if err != nil {
		metrics.StoreErrorsTotal.Inc()
		return dataError(fmt.Errorf("failed to retrieve game: %w", err))
	}

	if !strings.EqualFold(developer, game.Developer) {
		s.logger.Info("unauthorised developer - unable to delete game",
			zap.String("game_id", id), zap.String("developer", developer))
		metrics.AuthorizationDenialsTotal.Inc()
		return unauthorized()
	}

	if err := s.games.DeleteByID(ctx, id); err != nil {
		metrics.StoreErrorsTotal.Inc()
		return dataError(fmt.Errorf("failed to delete game: %w", err))
	}

	s.logger.Info("game deleted", zap.String("game_id", id))
	return noContent()
}

// developerApproved checks the developer name against the current allow-list.
// Linear scan, case-insensitive, first match wins; the result is never cached
// between calls.
func (s *GameService) developerApproved(ctx context.Context, name string) (bool, error) {
	developers, err := s.developers.FindAll(ctx)
	if err != nil {
		return false, err
	}

	for _, developer := range developers {
		if strings.EqualFold(name, developer.Name) {
			return true, nil
		}
	}
	return false, nil
}
