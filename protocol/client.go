package protocol

// Payloads sent by clients. create_game carries no payload.

type JoinGame struct {
	GameID   string `json:"gameId"`
	MarkerID int    `json:"markerId"`
}

type StartGame struct {
	GameID string `json:"gameId"`
}

type WatchGame struct {
	GameID string `json:"gameId"`
}

type Shoot struct {
	GameID         string `json:"gameId"`
	TargetMarkerID int    `json:"targetMarkerId"` // marker the camera recognized
}

type Bomb struct {
	GameID string `json:"gameId"`
}
