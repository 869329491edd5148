package service

import "github.com/Caiismith/videogame-api/internal/model"

// Status tags the business outcome of a service operation. The transport
// adapter maps each tag onto an HTTP status code.
type Status int

const (
	StatusCreated Status = iota
	StatusOK
	StatusNoContent
	StatusNotFound
	StatusUnauthorized
	StatusDataError
)

func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusOK:
		return "ok"
	case StatusNoContent:
		return "no_content"
	case StatusNotFound:
		return "not_found"
	case StatusUnauthorized:
		return "unauthorized"
	case StatusDataError:
		return "data_error"
	default:
		return "unknown"
	}
}

// Outcome is the tagged result of a service operation. Game is set for
// single-record successes, List for collection successes. Err carries the
// underlying store cause on StatusDataError and is for logging only; it is
// never rendered to the caller.
type Outcome struct {
	Status Status
	Game   *model.GameResponse
	List   *model.GameListResponse
	Err    error
}

func created(game *model.GameResponse) Outcome {
	return Outcome{Status: StatusCreated, Game: game}
}

func ok(game *model.GameResponse) Outcome {
	return Outcome{Status: StatusOK, Game: game}
}

func okList(list *model.GameListResponse) Outcome {
	return Outcome{Status: StatusOK, List: list}
}

func noContent() Outcome {
	return Outcome{Status: StatusNoContent}
}

func notFound() Outcome {
	return Outcome{Status: StatusNotFound}
}

func unauthorized() Outcome {
	return Outcome{Status: StatusUnauthorized}
}

func dataError(err error) Outcome {
	return Outcome{Status: StatusDataError, Err: err}
}
