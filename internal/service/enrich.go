package service

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"game_collector/internal/domain"
)

// DefaultTopN caps how many games per pass are candidates for enrichment.
const DefaultTopN = 20

// RankByRating ranks board games; a missing rating counts as zero.
func RankByRating(g domain.Game) float64 { return g.Rating }

// RankByPlaytime ranks digital games by accumulated playtime.
func RankByPlaytime(g domain.Game) float64 { return g.PlaytimeHours }

// Enricher augments the highest-ranked games of one source with tags,
// consulting the cache first and resolving misses through the source's
// strategy.
type Enricher struct {
	cache     TagCache
	resolver  TagResolver
	publisher Publisher
	sourceTag string
	rank      func(domain.Game) float64
	topN      int
	logger    *slog.Logger
}

// NewEnricher creates an enricher for one source. publisher may be nil.
func NewEnricher(
	cache TagCache,
	resolver TagResolver,
	publisher Publisher,
	sourceTag string,
	rank func(domain.Game) float64,
	topN int,
	logger *slog.Logger,
) *Enricher {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &Enricher{
		cache:     cache,
		resolver:  resolver,
		publisher: publisher,
		sourceTag: sourceTag,
		rank:      rank,
		topN:      topN,
		logger:    logger.With("source", sourceTag),
	}
}

// Enrich returns a copy of games ranked descending by the source's ranking
// key, with tags populated on the top-N subset where the cache or the
// resolver produced them. Games beyond the cap pass through untouched. The
// input slice is never mutated, and the call never fails: every problem on
// the way degrades to "no tags".
func (e *Enricher) Enrich(ctx context.Context, games []domain.Game) []domain.Game {
	startTime := time.Now()

	ranked := make([]domain.Game, len(games))
	copy(ranked, games)
	sort.SliceStable(ranked, func(i, j int) bool {
		return e.rank(ranked[i]) > e.rank(ranked[j])
	})

	top := ranked
	if len(top) > e.topN {
		top = ranked[:e.topN]
	}
	if len(top) == 0 {
		return ranked
	}

	keys := make([]string, len(top))
	for i, g := range top {
		keys[i] = domain.CacheKey(e.sourceTag, g.ID)
	}

	cached, err := e.cache.GetTags(ctx, keys)
	if err != nil {
		e.logger.Warn("tag cache read failed, treating all candidates as misses", "error", err)
		cached = map[string][]string{}
	}

	var misses []domain.Game
	for _, g := range top {
		if _, ok := cached[domain.CacheKey(e.sourceTag, g.ID)]; !ok {
			misses = append(misses, g)
		}
	}

	resolved := map[string][]string{}
	if len(misses) > 0 {
		resolved = e.resolver.Resolve(ctx, misses)

		if len(resolved) > 0 {
			if err := e.cache.SaveTags(ctx, resolved); err != nil {
				e.logger.Warn("tag cache save failed", "entries", len(resolved), "error", err)
			}
			if e.publisher != nil {
				if err := e.publisher.PublishResolved(ctx, e.sourceTag, resolved); err != nil {
					e.logger.Warn("publish resolved tags failed", "error", err)
				}
			}
		}
	}

	for i := range top {
		key := domain.CacheKey(e.sourceTag, ranked[i].ID)
		if tags, ok := cached[key]; ok {
			ranked[i].Tags = tags
		} else if tags, ok := resolved[key]; ok {
			ranked[i].Tags = tags
		}
	}

	stats := domain.EnrichStats{
		SourceTag:  e.sourceTag,
		Candidates: len(top),
		CacheHits:  len(top) - len(misses),
		Misses:     len(misses),
		Resolved:   len(resolved),
		Duration:   time.Since(startTime),
	}

	e.logger.Info("enrichment completed",
		"candidates", stats.Candidates,
		"cache_hits", stats.CacheHits,
		"misses", stats.Misses,
		"resolved", stats.Resolved,
		"duration", stats.Duration,
	)

	return ranked
}
