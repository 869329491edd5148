package service

import "github.com/Caiismith/videogame-api/internal/model"

// mapGameResponse projects a game into its external shape. The genre slice is
// shared with the input, not copied.
func mapGameResponse(game *model.Game) *model.GameResponse {
	return &model.GameResponse{
		ID:          game.ID,
		Title:       game.Title,
		ReleaseDate: game.ReleaseDate,
		Genres:      game.Genres,
		Developer:   game.Developer,
	}
}

// mapGameListResponse wraps a collection of games. ItemsPerPage and
// TotalResults both equal the collection size and StartIndex is zero; there is
// no real pagination cursor.
func mapGameListResponse(games []model.Game) *model.GameListResponse {
	items := make([]model.GameResponse, 0, len(games))
	for i := range games {
		items = append(items, *mapGameResponse(&games[i]))
	}

	return &model.GameListResponse{
		ItemsPerPage: len(games),
		StartIndex:   0,
		TotalResults: len(games),
		Items:        items,
	}
}
