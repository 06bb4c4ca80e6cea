package service

import (
	"context"
	"log/slog"
	"sync"

	"game_collector/internal/domain"
)

// DigitalResolver resolves digital-store tag misses with one concurrent
// request per app. A lookup that completes with no genre data still yields
// an (empty) entry, so the app is cached and not fetched again; only a
// transport failure leaves its entry out. One app's failure never blocks or
// fails the others.
type DigitalResolver struct {
	fetcher GenreFetcher
	logger  *slog.Logger
}

func NewDigitalResolver(fetcher GenreFetcher, logger *slog.Logger) *DigitalResolver {
	return &DigitalResolver{
		fetcher: fetcher,
		logger:  logger.With("source", domain.DigitalTag),
	}
}

func (r *DigitalResolver) Resolve(ctx context.Context, misses []domain.Game) map[string][]string {
	entries := make(map[string][]string, len(misses))

	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, g := range misses {
		wg.Add(1)
		go func(g domain.Game) {
			defer wg.Done()

			genres, err := r.fetcher.FetchGenres(ctx, g.ID)
			if err != nil {
				r.logger.Warn("genre fetch failed", "app_id", g.ID, "error", err)
				return
			}

			mu.Lock()
			entries[domain.CacheKey(domain.DigitalTag, g.ID)] = genres
			mu.Unlock()
		}(g)
	}

	wg.Wait()

	return entries
}
