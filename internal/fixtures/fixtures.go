// Package fixtures holds canned catalog responses for demo and test use
// without live credentials. The resolvers are attached to the catalog
// clients by configuration; the clients themselves carry no knowledge of
// which usernames or ids are canned.
package fixtures

import (
	"strings"

	"game_collector/internal/domain"
)

// BGG serves a canned collection for the demo username and canned metadata
// for a fixed pair of game ids.
type BGG struct {
	collections map[string][]domain.Game
	tags        map[string][]string
}

func NewBGG() *BGG {
	return &BGG{
		collections: map[string][]domain.Game{
			"mock": {
				{
					ID:          "68448",
					Name:        "7 Wonders",
					Thumbnail:   "https://cf.geekdo-images.com/35h9Za_JvMMMtx_92kT0Jg__small/img/BUOso8b0M1aUOkU80FWlhE8uuxc=/fit-in/200x150/filters:strip_icc()/pic7149798.jpg",
					Source:      domain.SourceBoard,
					MinPlayers:  "2",
					MaxPlayers:  "7",
					PlayingTime: "30",
					Rating:      7.66526,
				},
				{
					ID:          "167791",
					Name:        "Terraforming Mars",
					Thumbnail:   "https://cf.geekdo-images.com/wg9oOLcsKvDesSUdZQ4rxw__small/img/iC5hVbLpD08_O0L8o_jJ3a464=/fit-in/200x150/filters:strip_icc()/pic3536616.jpg",
					Source:      domain.SourceBoard,
					MinPlayers:  "1",
					MaxPlayers:  "5",
					PlayingTime: "120",
					Rating:      8.4,
				},
			},
		},
		tags: map[string][]string{
			"68448":  {"Card Game", "Civilization", "Closed Drafting", "Hand Management"},
			"167791": {"Strategy", "Space Exploration", "Hand Management", "Engine Building"},
		},
	}
}

func (f *BGG) Collection(username string) ([]domain.Game, bool) {
	games, ok := f.collections[strings.ToLower(username)]
	if !ok {
		return nil, false
	}
	out := make([]domain.Game, len(games))
	copy(out, games)
	return out, true
}

// Tags covers a batch when at least one requested id is canned; the result
// then replaces the whole batch call, so ids outside the canned set resolve
// to nothing that round.
func (f *BGG) Tags(ids []string) (map[string][]string, bool) {
	covered := false
	result := make(map[string][]string)
	for _, id := range ids {
		if tags, ok := f.tags[id]; ok {
			covered = true
			result[id] = append([]string(nil), tags...)
		}
	}
	if !covered {
		return nil, false
	}
	return result, true
}

// Steam serves a canned collection for the demo steam id.
type Steam struct {
	collections map[string][]domain.Game
}

func NewSteam() *Steam {
	return &Steam{
		collections: map[string][]domain.Game{
			"mock": {
				{
					ID:            "10",
					Name:          "Counter-Strike",
					Thumbnail:     "https://media.steampowered.com/steamcommunity/public/images/apps/10/6b0312cda02f5f777efa2f3318c307ff9acafbb5.jpg",
					Source:        domain.SourceDigital,
					PlaytimeHours: 500.5,
				},
				{
					ID:            "413150",
					Name:          "Stardew Valley",
					Thumbnail:     "https://media.steampowered.com/steamcommunity/public/images/apps/413150/687a4128dfd9876d750a9df03d4957e28424a919.jpg",
					Source:        domain.SourceDigital,
					PlaytimeHours: 120,
				},
				{
					ID:            "271590",
					Name:          "Grand Theft Auto V",
					Thumbnail:     "https://media.steampowered.com/steamcommunity/public/images/apps/271590/0ec5956947b52f6b86a8a3857d9036a655255474.jpg",
					Source:        domain.SourceDigital,
					PlaytimeHours: 50,
				},
			},
		},
	}
}

func (f *Steam) Collection(steamID string) ([]domain.Game, bool) {
	games, ok := f.collections[steamID]
	if !ok {
		return nil, false
	}
	out := make([]domain.Game, len(games))
	copy(out, games)
	return out, true
}
