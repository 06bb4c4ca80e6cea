package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"game_collector/internal/domain"
)

// TagCache is the durable store of resolved tags, keyed by the namespaced
// cache key. Keys absent from the store are omitted from the GetTags result,
// never reported as an error.
type TagCache interface {
	GetTags(ctx context.Context, keys []string) (map[string][]string, error)
	SaveTags(ctx context.Context, entries map[string][]string) error
}

// TagResolver resolves tags for cache misses, keyed by cache key. Resolve
// never fails the enrichment pass: fetch problems are logged inside and the
// affected entries are simply left out of the result.
//
// The two strategies deliberately differ on empty results. The digital-store
// resolver includes an entry (possibly empty) for every miss whose lookup
// completed, so a genre-less app is cached and never re-fetched. The
// board-game resolver only includes ids that yielded tags, so a failed batch
// stays a miss and is retried on the next pass.
type TagResolver interface {
	Resolve(ctx context.Context, misses []domain.Game) map[string][]string
}

// BatchTagFetcher resolves several ids with one metadata request.
type BatchTagFetcher interface {
	FetchTags(ctx context.Context, ids []string) (map[string][]string, error)
}

// GenreFetcher resolves genre descriptions for a single app id.
type GenreFetcher interface {
	FetchGenres(ctx context.Context, id string) ([]string, error)
}

// Publisher emits an event when an enrichment pass resolved new tags.
type Publisher interface {
	PublishResolved(ctx context.Context, sourceTag string, entries map[string][]string) error
	Close() error
}
