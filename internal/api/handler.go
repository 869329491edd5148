package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/Caiismith/videogame-api/internal/model"
	"github.com/Caiismith/videogame-api/internal/service"
	"github.com/Caiismith/videogame-api/pkg/logger"
	"github.com/Caiismith/videogame-api/pkg/metrics"
)

// Handler translates inbound requests to game service calls and maps
// outcomes back onto HTTP status codes.
type Handler struct {
	gameService *service.GameService
	logger      *logger.Logger
}

// NewHandler creates a new handler
func NewHandler(gameService *service.GameService, logger *logger.Logger) *Handler {
	return &Handler{
		gameService: gameService,
		logger:      logger,
	}
}

// Routes sets up all routes
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware(h.logger))

	r.Route("/games", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.GetAll)
		r.Get("/{id}", h.Get)
		r.Put("/developer/{developer}/{id}", h.Update)
		r.Delete("/developer/{developer}/{id}", h.Delete)
	})

	return r
}

// Create handles POST /games
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var game model.Game
	if err := json.NewDecoder(r.Body).Decode(&game); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err), zap.String("request_id", GetRequestID(r.Context())))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	h.render(w, r, "create", h.gameService.Create(r.Context(), &game))
}

// GetAll handles GET /games
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "get_all", h.gameService.GetAll(r.Context()))
}

// Get handles GET /games/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "get", h.gameService.Get(r.Context(), chi.URLParam(r, "id")))
}

// Update handles PUT /games/developer/{developer}/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var game model.Game
	if err := json.NewDecoder(r.Body).Decode(&game); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err), zap.String("request_id", GetRequestID(r.Context())))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	developer := chi.URLParam(r, "developer")
	id := chi.URLParam(r, "id")
	h.render(w, r, "update", h.gameService.Update(r.Context(), &game, developer, id))
}

// Delete handles DELETE /games/developer/{developer}/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	developer := chi.URLParam(r, "developer")
	id := chi.URLParam(r, "id")
	h.render(w, r, "delete", h.gameService.Delete(r.Context(), developer, id))
}

// render maps a service outcome onto a transport status. Store causes are
// logged here and never written to the response body.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, operation string, outcome service.Outcome) {
	metrics.RequestsTotal.WithLabelValues(operation, outcome.Status.String()).Inc()

	switch outcome.Status {
	case service.StatusCreated:
		h.respondJSON(w, http.StatusCreated, outcome.Game)
	case service.StatusOK:
		if outcome.List != nil {
			h.respondJSON(w, http.StatusOK, outcome.List)
		} else {
			h.respondJSON(w, http.StatusOK, outcome.Game)
		}
	case service.StatusNoContent:
		w.WriteHeader(http.StatusNoContent)
	case service.StatusNotFound:
		w.WriteHeader(http.StatusNotFound)
	case service.StatusUnauthorized:
		w.WriteHeader(http.StatusUnauthorized)
	default:
		h.logger.Error("operation failed", outcome.Err,
			zap.String("operation", operation),
			zap.String("request_id", GetRequestID(r.Context())),
		)
		w.WriteHeader(http.StatusBadRequest)
	}
}

// respondJSON sends a JSON response
func (h *Handler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
