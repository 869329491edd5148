package model

// Game is a catalog entry. The ID is assigned by the service on creation and
// never changes afterwards.
type Game struct {
	ID          string   `json:"id" bson:"_id,omitempty"`
	Title       string   `json:"title" bson:"title"`
	ReleaseDate Date     `json:"release_date" bson:"release_date"`
	Genres      []string `json:"genres" bson:"genres"`
	Developer   string   `json:"developer" bson:"developer"`
}

// Developer is an approved publisher. Name is the sole authorization key.
type Developer struct {
	Name         string `json:"name" bson:"name"`
	Headquarters string `json:"headquarters" bson:"headquarters"`
}

// GameResponse is the external representation of a single game.
type GameResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	ReleaseDate Date     `json:"release_date"`
	Genres      []string `json:"genres"`
	Developer   string   `json:"developer"`
}

// GameListResponse wraps a collection of games with pagination metadata.
// There is no real windowing: ItemsPerPage and TotalResults both describe the
// full result set and StartIndex is always zero.
type GameListResponse struct {
	ItemsPerPage int            `json:"items_per_page"`
	StartIndex   int            `json:"start_index"`
	TotalResults int            `json:"total_results"`
	Items        []GameResponse `json:"items"`
}
