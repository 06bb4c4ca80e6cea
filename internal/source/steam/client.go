package steam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"game_collector/internal/domain"
)

const (
	SourceID   = "steam"
	SourceName = "Steam"
)

// ErrVanityNotFound is returned when a vanity URL does not resolve to an id.
var ErrVanityNotFound = errors.New("steam username not found")

// ErrProfilePrivate is returned when the owned-games reply carries no game
// data, which Steam uses for private profiles and unknown ids alike.
var ErrProfilePrivate = errors.New("profile is private or id is invalid")

// StatusError carries a non-success status from the Steam API.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("steam responded with status %d", e.Code)
}

// Fixtures supplies canned collections ahead of any network call.
type Fixtures interface {
	Collection(steamID string) ([]domain.Game, bool)
}

// Config holds Steam client configuration.
type Config struct {
	APIBaseURL   string
	StoreBaseURL string
	APIKey       string
	Timeout      time.Duration
}

// Client talks to the Steam Web API and the store metadata endpoint.
type Client struct {
	httpClient   *http.Client
	apiBaseURL   string
	storeBaseURL string
	apiKey       string
	fixtures     Fixtures
	logger       *slog.Logger
}

var steamID64Pattern = regexp.MustCompile(`^\d{17}$`)

// New creates a new Steam client. fixtures may be nil.
func New(cfg Config, fixtures Fixtures, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		apiBaseURL:   cfg.APIBaseURL,
		storeBaseURL: cfg.StoreBaseURL,
		apiKey:       cfg.APIKey,
		fixtures:     fixtures,
		logger:       logger.With("source", SourceID),
	}
}

// FetchCollection fetches a user's owned games. Input that does not look
// like a SteamID64 is first resolved as a vanity URL.
func (c *Client) FetchCollection(ctx context.Context, steamID string) ([]domain.Game, error) {
	if c.fixtures != nil {
		if games, ok := c.fixtures.Collection(steamID); ok {
			c.logger.Debug("serving collection from fixtures", "steam_id", steamID)
			return games, nil
		}
	}

	resolved := steamID
	if !steamID64Pattern.MatchString(steamID) {
		var err error
		resolved, err = c.resolveVanityURL(ctx, steamID)
		if err != nil {
			return nil, err
		}
	}

	reqURL := fmt.Sprintf(
		"%s/IPlayerService/GetOwnedGames/v0001/?key=%s&steamid=%s&include_appinfo=true&format=json",
		c.apiBaseURL, url.QueryEscape(c.apiKey), url.QueryEscape(resolved),
	)

	var ownedResp ownedGamesResponse
	if err := c.getJSON(ctx, reqURL, &ownedResp); err != nil {
		return nil, fmt.Errorf("fetch owned games: %w", err)
	}

	if ownedResp.Response.Games == nil {
		return nil, ErrProfilePrivate
	}

	games := make([]domain.Game, 0, len(ownedResp.Response.Games))
	for _, g := range ownedResp.Response.Games {
		appID := strconv.FormatInt(g.AppID, 10)
		games = append(games, domain.Game{
			ID:   appID,
			Name: g.Name,
			Thumbnail: fmt.Sprintf(
				"https://media.steampowered.com/steamcommunity/public/images/apps/%s/%s.jpg",
				appID, g.ImgIconURL,
			),
			Source:        domain.SourceDigital,
			PlaytimeHours: minutesToHours(g.PlaytimeForever),
		})
	}

	return games, nil
}

func (c *Client) resolveVanityURL(ctx context.Context, vanity string) (string, error) {
	reqURL := fmt.Sprintf(
		"%s/ISteamUser/ResolveVanityURL/v0001/?key=%s&vanityurl=%s",
		c.apiBaseURL, url.QueryEscape(c.apiKey), url.QueryEscape(vanity),
	)

	var resolveResp vanityResponse
	if err := c.getJSON(ctx, reqURL, &resolveResp); err != nil {
		return "", fmt.Errorf("resolve vanity url: %w", err)
	}

	if resolveResp.Response.Success != 1 {
		return "", ErrVanityNotFound
	}

	return resolveResp.Response.SteamID, nil
}

// FetchGenres resolves genre descriptions for one app. A reply with
// success=false or no genre data is a valid empty result, not an error.
func (c *Client) FetchGenres(ctx context.Context, id string) ([]string, error) {
	reqURL := fmt.Sprintf("%s/appdetails?appids=%s&filters=genres&l=en",
		c.storeBaseURL, url.QueryEscape(id))

	var details appDetails
	if err := c.getJSON(ctx, reqURL, &details); err != nil {
		return nil, fmt.Errorf("fetch genres for app %s: %w", id, err)
	}

	entry, ok := details[id]
	if !ok || !entry.Success || entry.Data == nil {
		return []string{}, nil
	}

	genres := make([]string, 0, len(entry.Data.Genres))
	for _, g := range entry.Data.Genres {
		genres = append(genres, g.Description)
	}

	return genres, nil
}

func (c *Client) getJSON(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "GameCollector/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// minutesToHours converts Steam's playtime minutes to hours rounded to one
// decimal place.
func minutesToHours(minutes int64) float64 {
	if minutes <= 0 {
		return 0
	}
	return math.Round(float64(minutes)/60*10) / 10
}
