package protocol

type GameCreated struct {
	Code string `json:"code"`
}

type JoinedGame struct {
	Name     string `json:"name"`
	MarkerID int    `json:"markerId"`
}

type Error struct {
	Message string `json:"message"`
}

type PlayersUpdate struct {
	Players []PlayerSnapshot `json:"players"`
}

type PlayerSnapshot struct {
	ID        string `json:"id"` // connection id, stable for the player's lifetime
	Name      string `json:"name"`
	MarkerID  int    `json:"markerId"`
	Lives     int    `json:"lives"`
	Kills     int    `json:"kills"`
	Score     int    `json:"score"`
	Reloading bool   `json:"reloading"`
}

type PlayerAction struct {
	Text string `json:"text"`
}

type GameTime struct {
	Seconds int `json:"seconds"`
}
