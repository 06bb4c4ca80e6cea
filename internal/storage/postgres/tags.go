package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// TagStore is a Postgres-backed tag cache. One row per cache key with the
// tag list in a text array column.
type TagStore struct {
	db *sqlx.DB
}

func NewTagStore(db *sqlx.DB) *TagStore {
	return &TagStore{db: db}
}

type tagRow struct {
	CacheKey string         `db:"cache_key"`
	Tags     pq.StringArray `db:"tags"`
}

// GetTags bulk-reads tag lists for the given cache keys. Keys without a row
// are omitted from the result.
func (s *TagStore) GetTags(ctx context.Context, keys []string) (map[string][]string, error) {
	if len(keys) == 0 {
		return map[string][]string{}, nil
	}

	query := `SELECT cache_key, tags FROM game_tags WHERE cache_key = ANY($1)`

	var rows []tagRow
	if err := s.db.SelectContext(ctx, &rows, query, pq.Array(keys)); err != nil {
		return nil, fmt.Errorf("bulk get tags: %w", err)
	}

	result := make(map[string][]string, len(rows))
	for _, row := range rows {
		tags := []string(row.Tags)
		if tags == nil {
			tags = []string{}
		}
		result[row.CacheKey] = tags
	}

	return result, nil
}

// SaveTags bulk-upserts tag lists with one multi-value statement.
func (s *TagStore) SaveTags(ctx context.Context, entries map[string][]string) error {
	if len(entries) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO game_tags (cache_key, tags) VALUES ")
	valueArgs := make([]interface{}, 0, len(entries)*2)

	i := 0
	for key, tags := range entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("($")
		sb.WriteString(strconv.Itoa(i*2 + 1))
		sb.WriteString(", $")
		sb.WriteString(strconv.Itoa(i*2 + 2))
		sb.WriteString(")")
		valueArgs = append(valueArgs, key, pq.Array(tags))
		i++
	}
	sb.WriteString(" ON CONFLICT (cache_key) DO UPDATE SET tags = EXCLUDED.tags, updated_at = NOW()")

	if _, err := s.db.ExecContext(ctx, sb.String(), valueArgs...); err != nil {
		return fmt.Errorf("bulk save tags: %w", err)
	}

	return nil
}
