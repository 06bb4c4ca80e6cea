package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"game_collector/internal/domain"
	"game_collector/internal/source/bgg"
	"game_collector/internal/source/steam"
)

// BoardCatalog fetches a board-game collection by registry username.
type BoardCatalog interface {
	FetchCollection(ctx context.Context, username string) ([]domain.Game, error)
}

// DigitalCatalog fetches a digital-store collection by steam id or vanity name.
type DigitalCatalog interface {
	FetchCollection(ctx context.Context, steamID string) ([]domain.Game, error)
}

// GameEnricher augments a fetched collection with tags.
type GameEnricher interface {
	Enrich(ctx context.Context, games []domain.Game) []domain.Game
}

// Handlers exposes the collection endpoints.
type Handlers struct {
	board           BoardCatalog
	digital         DigitalCatalog
	boardEnricher   GameEnricher
	digitalEnricher GameEnricher
	logger          *slog.Logger
}

func New(
	board BoardCatalog,
	digital DigitalCatalog,
	boardEnricher GameEnricher,
	digitalEnricher GameEnricher,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		board:           board,
		digital:         digital,
		boardEnricher:   boardEnricher,
		digitalEnricher: digitalEnricher,
		logger:          logger,
	}
}

// RegisterRoutes attaches all endpoints to the router.
func (h *Handlers) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/bgg", h.GetBoardCollection).Methods(http.MethodGet)
	r.HandleFunc("/api/steam", h.GetDigitalCollection).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
}

type gamesResponse struct {
	Games []domain.Game `json:"games"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// GetBoardCollection handles GET /api/bgg?username=<u>.
func (h *Handlers) GetBoardCollection(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		h.respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Username is required"})
		return
	}

	games, err := h.board.FetchCollection(r.Context(), username)
	if err != nil {
		h.respondBoardError(w, username, err)
		return
	}

	games = h.boardEnricher.Enrich(r.Context(), games)

	h.respondJSON(w, http.StatusOK, gamesResponse{Games: games})
}

func (h *Handlers) respondBoardError(w http.ResponseWriter, username string, err error) {
	if errors.Is(err, bgg.ErrProcessing) {
		h.respondJSON(w, http.StatusAccepted, errorResponse{
			Error: "BGG is processing your request. Please try again later.",
		})
		return
	}

	var statusErr *bgg.StatusError
	if errors.As(err, &statusErr) {
		h.respondJSON(w, statusErr.Code, errorResponse{
			Error: "Failed to fetch collection from BGG.",
		})
		return
	}

	h.logger.Error("board collection fetch failed", "username", username, "error", err)
	h.respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
}

// GetDigitalCollection handles GET /api/steam?steamId=<id or vanity name>.
func (h *Handlers) GetDigitalCollection(w http.ResponseWriter, r *http.Request) {
	steamID := r.URL.Query().Get("steamId")
	if steamID == "" {
		h.respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Steam ID or Vanity URL is required"})
		return
	}

	games, err := h.digital.FetchCollection(r.Context(), steamID)
	if err != nil {
		h.respondDigitalError(w, steamID, err)
		return
	}

	games = h.digitalEnricher.Enrich(r.Context(), games)

	h.respondJSON(w, http.StatusOK, gamesResponse{Games: games})
}

func (h *Handlers) respondDigitalError(w http.ResponseWriter, steamID string, err error) {
	switch {
	case errors.Is(err, steam.ErrVanityNotFound):
		h.respondJSON(w, http.StatusNotFound, errorResponse{Error: "Steam Username not found"})
		return
	case errors.Is(err, steam.ErrProfilePrivate):
		h.respondJSON(w, http.StatusForbidden, errorResponse{
			Error: "Profile is private or ID is invalid. Ensure your 'Game Details' are set to Public in Steam settings.",
		})
		return
	}

	var statusErr *steam.StatusError
	if errors.As(err, &statusErr) {
		h.respondJSON(w, statusErr.Code, errorResponse{Error: "Steam API Error"})
		return
	}

	h.logger.Error("digital collection fetch failed", "steam_id", steamID, "error", err)
	h.respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
}

// Health handles GET /health.
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handlers) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("encode response failed", "error", err)
	}
}
