package domain

import "fmt"

// Source identifies which catalog a game came from.
type Source string

const (
	SourceBoard   Source = "board"
	SourceDigital Source = "digital"
)

// Tag namespaces used when building cache keys. Game ids are only unique
// within a single catalog, so the namespace keeps the two id spaces apart
// in a shared cache.
const (
	BoardTag   = "bgg"
	DigitalTag = "steam"
)

// Game is the unified record produced by both catalog clients.
type Game struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Thumbnail string `json:"thumbnail"`
	Source    Source `json:"source"`

	// Board-game fields, free-form numeric strings as the registry returns them.
	MinPlayers  string `json:"minPlayers,omitempty"`
	MaxPlayers  string `json:"maxPlayers,omitempty"`
	PlayingTime string `json:"playingTime,omitempty"` // minutes

	// Digital-store field, hours rounded to one decimal.
	PlaytimeHours float64 `json:"playtimeHours,omitempty"`

	// Rating is only set for board games and is used for enrichment ranking.
	Rating float64 `json:"rating,omitempty"`

	// Tags is nil until an enrichment pass has attempted a lookup for this
	// game. A non-nil empty slice means a lookup ran and returned nothing.
	Tags []string `json:"tags,omitempty"`
}

// CacheKey builds the namespaced tag cache key for a game id.
func CacheKey(sourceTag, id string) string {
	return fmt.Sprintf("%s:%s", sourceTag, id)
}
