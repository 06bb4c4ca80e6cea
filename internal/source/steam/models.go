package steam

// vanityResponse is the reply of the vanity URL resolution endpoint.
type vanityResponse struct {
	Response struct {
		Success int    `json:"success"`
		SteamID string `json:"steamid"`
	} `json:"response"`
}

// ownedGamesResponse is the reply of the owned-games endpoint. A private
// profile answers with an empty response object.
type ownedGamesResponse struct {
	Response struct {
		GameCount int         `json:"game_count"`
		Games     []ownedGame `json:"games"`
	} `json:"response"`
}

type ownedGame struct {
	AppID           int64  `json:"appid"`
	Name            string `json:"name"`
	ImgIconURL      string `json:"img_icon_url"`
	PlaytimeForever int64  `json:"playtime_forever"` // minutes
}

// appDetails is the reply of the store appdetails endpoint, keyed by the
// requested app id.
type appDetails map[string]appDetailsEntry

type appDetailsEntry struct {
	Success bool `json:"success"`
	Data    *struct {
		Genres []genre `json:"genres"`
	} `json:"data"`
}

type genre struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}
