package bgg

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"game_collector/internal/domain"
)

const (
	SourceID   = "bgg"
	SourceName = "BoardGameGeek"

	userAgent = "GameCollector/1.0"
)

// ErrProcessing is returned when the registry is still preparing the
// collection export after every attempt. Callers should treat it as a
// "try again later" signal, not a hard failure.
var ErrProcessing = errors.New("collection export still processing")

// StatusError carries a non-success, non-processing status from the registry.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("bgg responded with status %d", e.Code)
}

// Fixtures supplies canned responses ahead of any network call. Both methods
// report whether they cover the request; when Tags covers any of the ids the
// canned result replaces the entire batch call.
type Fixtures interface {
	Collection(username string) ([]domain.Game, bool)
	Tags(ids []string) (map[string][]string, bool)
}

// Config holds BGG client configuration.
type Config struct {
	BaseURL     string
	BearerToken string
	Timeout     time.Duration
	MaxAttempts int
	Delay       time.Duration
}

// Client talks to the BGG XML API.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	bearerToken string
	maxAttempts int
	delay       time.Duration
	fixtures    Fixtures
	logger      *slog.Logger
}

// New creates a new BGG client. fixtures may be nil.
func New(cfg Config, fixtures Fixtures, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:     cfg.BaseURL,
		bearerToken: cfg.BearerToken,
		maxAttempts: cfg.MaxAttempts,
		delay:       cfg.Delay,
		fixtures:    fixtures,
		logger:      logger.With("source", SourceID),
	}
}

// FetchCollection fetches a user's owned collection. The registry prepares
// the export asynchronously and answers 202 until it is ready, so the call
// polls with a fixed delay up to maxAttempts total requests.
func (c *Client) FetchCollection(ctx context.Context, username string) ([]domain.Game, error) {
	if c.fixtures != nil {
		if games, ok := c.fixtures.Collection(username); ok {
			c.logger.Debug("serving collection from fixtures", "username", username)
			return games, nil
		}
	}

	reqURL := fmt.Sprintf("%s/collection?username=%s&own=1&stats=1",
		c.baseURL, url.QueryEscape(username))

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		status, body, err := c.get(ctx, reqURL, false)
		if err != nil {
			return nil, fmt.Errorf("fetch collection: %w", err)
		}

		if status == http.StatusAccepted {
			if attempt == c.maxAttempts {
				return nil, ErrProcessing
			}
			c.logger.Info("collection still processing, retrying",
				"attempt", attempt,
				"delay", c.delay,
			)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.delay):
			}
			continue
		}

		if status != http.StatusOK {
			return nil, &StatusError{Code: status}
		}

		return c.decodeCollection(body, username)
	}

	return nil, ErrProcessing
}

func (c *Client) decodeCollection(body []byte, username string) ([]domain.Game, error) {
	var doc collectionDoc
	if err := xml.Unmarshal(body, &doc); err != nil {
		c.logger.Warn("malformed collection payload", "username", username, "error", err)
		return []domain.Game{}, nil
	}

	if doc.XMLName.Local == "errors" {
		msg := doc.Message
		if msg == "" {
			msg = "registry rejected the request"
		}
		return nil, fmt.Errorf("fetch collection: %s", msg)
	}

	games := make([]domain.Game, 0, len(doc.Items))
	for _, item := range doc.Items {
		games = append(games, domain.Game{
			ID:          item.ObjectID,
			Name:        item.Name.displayName(),
			Thumbnail:   item.Thumbnail,
			Source:      domain.SourceBoard,
			MinPlayers:  item.Stats.MinPlayers,
			MaxPlayers:  item.Stats.MaxPlayers,
			PlayingTime: item.Stats.PlayingTime,
			Rating:      parseRating(item.Stats.Rating.Average.Value),
		})
	}

	return games, nil
}

func (n collectionName) displayName() string {
	if n.Value != "" {
		return n.Value
	}
	if text := strings.TrimSpace(n.Text); text != "" {
		return text
	}
	return "Unknown"
}

func parseRating(raw string) float64 {
	rating, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return rating
}

// FetchTags resolves category and mechanic tags for a batch of game ids with
// a single metadata request. The result only contains ids that yielded at
// least one tag; ids absent from the response stay absent from the map.
func (c *Client) FetchTags(ctx context.Context, ids []string) (map[string][]string, error) {
	if len(ids) == 0 {
		return map[string][]string{}, nil
	}

	if c.fixtures != nil {
		if tags, ok := c.fixtures.Tags(ids); ok {
			c.logger.Debug("serving tags from fixtures", "ids", len(ids))
			return tags, nil
		}
	}

	reqURL := fmt.Sprintf("%s/thing?id=%s&type=boardgame",
		c.baseURL, strings.Join(ids, ","))

	status, body, err := c.get(ctx, reqURL, true)
	if err != nil {
		return nil, fmt.Errorf("fetch tags: %w", err)
	}
	if status != http.StatusOK {
		return nil, &StatusError{Code: status}
	}

	var doc thingDoc
	if err := xml.Unmarshal(body, &doc); err != nil {
		c.logger.Warn("malformed metadata payload", "error", err)
		return map[string][]string{}, nil
	}

	tags := make(map[string][]string)
	for _, item := range doc.Items {
		values := collectLinkValues(item.Links)
		if len(values) > 0 {
			tags[item.ID] = values
		}
	}

	return tags, nil
}

// collectLinkValues keeps category and mechanic links, deduplicated with the
// first occurrence winning.
func collectLinkValues(links []thingLink) []string {
	seen := make(map[string]struct{}, len(links))
	var values []string
	for _, link := range links {
		if link.Type != "boardgamecategory" && link.Type != "boardgamemechanic" {
			continue
		}
		if _, ok := seen[link.Value]; ok {
			continue
		}
		seen[link.Value] = struct{}{}
		values = append(values, link.Value)
	}
	return values
}

func (c *Client) get(ctx context.Context, reqURL string, authorized bool) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/xml")
	if authorized && c.bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read response: %w", err)
	}

	return resp.StatusCode, body, nil
}
