package service

import (
	"context"
	"log/slog"

	"game_collector/internal/domain"
)

// BoardResolver resolves board-game tag misses with one batched metadata
// request. When the batch fails nothing is resolved and nothing is cached,
// so every miss stays a retry candidate for the next pass.
type BoardResolver struct {
	fetcher BatchTagFetcher
	logger  *slog.Logger
}

func NewBoardResolver(fetcher BatchTagFetcher, logger *slog.Logger) *BoardResolver {
	return &BoardResolver{
		fetcher: fetcher,
		logger:  logger.With("source", domain.BoardTag),
	}
}

func (r *BoardResolver) Resolve(ctx context.Context, misses []domain.Game) map[string][]string {
	ids := make([]string, len(misses))
	for i, g := range misses {
		ids[i] = g.ID
	}

	tags, err := r.fetcher.FetchTags(ctx, ids)
	if err != nil {
		r.logger.Warn("batch tag fetch failed", "ids", len(ids), "error", err)
		return map[string][]string{}
	}

	entries := make(map[string][]string, len(tags))
	for id, values := range tags {
		entries[domain.CacheKey(domain.BoardTag, id)] = values
	}

	return entries
}
