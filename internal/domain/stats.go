package domain

import "time"

// EnrichStats holds statistics about one enrichment pass.
type EnrichStats struct {
	SourceTag  string
	Candidates int
	CacheHits  int
	Misses     int
	Resolved   int
	Duration   time.Duration
}
