package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"game_collector/internal/domain"
	"game_collector/internal/source/bgg"
	"game_collector/internal/source/steam"
)

type stubCatalog struct {
	games []domain.Game
	err   error
}

func (s *stubCatalog) FetchCollection(_ context.Context, _ string) ([]domain.Game, error) {
	return s.games, s.err
}

// passthroughEnricher returns its input unchanged.
type passthroughEnricher struct{}

func (passthroughEnricher) Enrich(_ context.Context, games []domain.Game) []domain.Game {
	return games
}

// taggingEnricher marks every game so tests can see the enricher ran.
type taggingEnricher struct{}

func (taggingEnricher) Enrich(_ context.Context, games []domain.Game) []domain.Game {
	out := make([]domain.Game, len(games))
	copy(out, games)
	for i := range out {
		out[i].Tags = []string{"Enriched"}
	}
	return out
}

func newTestRouter(board BoardCatalog, digital DigitalCatalog, boardEnricher, digitalEnricher GameEnricher) *mux.Router {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	r := mux.NewRouter()
	New(board, digital, boardEnricher, digitalEnricher, logger).RegisterRoutes(r)
	return r
}

func doRequest(t *testing.T, router *mux.Router, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetBoardCollection_MissingUsername(t *testing.T) {
	router := newTestRouter(&stubCatalog{}, &stubCatalog{}, passthroughEnricher{}, passthroughEnricher{})

	rec := doRequest(t, router, "/api/bgg")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Username is required")
}

func TestGetBoardCollection_Success(t *testing.T) {
	board := &stubCatalog{games: []domain.Game{
		{ID: "101", Name: "Game A", Source: domain.SourceBoard, Rating: 8.5},
	}}
	router := newTestRouter(board, &stubCatalog{}, taggingEnricher{}, passthroughEnricher{})

	rec := doRequest(t, router, "/api/bgg?username=alice")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp struct {
		Games []domain.Game `json:"games"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Games, 1)
	assert.Equal(t, []string{"Enriched"}, resp.Games[0].Tags)
}

func TestGetBoardCollection_Processing(t *testing.T) {
	board := &stubCatalog{err: bgg.ErrProcessing}
	router := newTestRouter(board, &stubCatalog{}, passthroughEnricher{}, passthroughEnricher{})

	rec := doRequest(t, router, "/api/bgg?username=alice")

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), "try again later")
}

func TestGetBoardCollection_RemoteStatusPreserved(t *testing.T) {
	board := &stubCatalog{err: &bgg.StatusError{Code: http.StatusServiceUnavailable}}
	router := newTestRouter(board, &stubCatalog{}, passthroughEnricher{}, passthroughEnricher{})

	rec := doRequest(t, router, "/api/bgg?username=alice")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGetBoardCollection_InternalError(t *testing.T) {
	board := &stubCatalog{err: errors.New("boom")}
	router := newTestRouter(board, &stubCatalog{}, passthroughEnricher{}, passthroughEnricher{})

	rec := doRequest(t, router, "/api/bgg?username=alice")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetDigitalCollection_MissingSteamID(t *testing.T) {
	router := newTestRouter(&stubCatalog{}, &stubCatalog{}, passthroughEnricher{}, passthroughEnricher{})

	rec := doRequest(t, router, "/api/steam")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetDigitalCollection_Success(t *testing.T) {
	digital := &stubCatalog{games: []domain.Game{
		{ID: "10", Name: "Counter-Strike", Source: domain.SourceDigital, PlaytimeHours: 500.5},
	}}
	router := newTestRouter(&stubCatalog{}, digital, passthroughEnricher{}, taggingEnricher{})

	rec := doRequest(t, router, "/api/steam?steamId=76561197960287930")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Games []domain.Game `json:"games"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Games, 1)
	assert.Equal(t, []string{"Enriched"}, resp.Games[0].Tags)
}

func TestGetDigitalCollection_VanityNotFound(t *testing.T) {
	digital := &stubCatalog{err: steam.ErrVanityNotFound}
	router := newTestRouter(&stubCatalog{}, digital, passthroughEnricher{}, passthroughEnricher{})

	rec := doRequest(t, router, "/api/steam?steamId=nobody")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetDigitalCollection_PrivateProfile(t *testing.T) {
	digital := &stubCatalog{err: steam.ErrProfilePrivate}
	router := newTestRouter(&stubCatalog{}, digital, passthroughEnricher{}, passthroughEnricher{})

	rec := doRequest(t, router, "/api/steam?steamId=76561197960287930")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "private")
}

func TestGetDigitalCollection_RemoteStatusPreserved(t *testing.T) {
	digital := &stubCatalog{err: &steam.StatusError{Code: http.StatusTooManyRequests}}
	router := newTestRouter(&stubCatalog{}, digital, passthroughEnricher{}, passthroughEnricher{})

	rec := doRequest(t, router, "/api/steam?steamId=76561197960287930")

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestHealth(t *testing.T) {
	router := newTestRouter(&stubCatalog{}, &stubCatalog{}, passthroughEnricher{}, passthroughEnricher{})

	rec := doRequest(t, router, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
