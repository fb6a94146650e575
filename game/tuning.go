package game

import "time"

const (
	MaxPlayers        = 10
	MinPlayersToStart = 4
	StartingLives     = 5
	MarkerIDMin       = 0
	MarkerIDMax       = 14 // ArUco dictionary used by the clients has 15 tags
	HitScore          = 100
	BombCost          = 400 // score spent per bomb
	BombDamage        = 2   // lives taken from every other living player
	ReloadDuration    = 2000 * time.Millisecond
)

// Callsigns is the fixed pool of display names handed out at join time.
// Pool size equals MaxPlayers so a forming session can never run dry.
var Callsigns = [MaxPlayers]string{
	"Alpha", "Bravo", "Charlie", "Delta", "Echo",
	"Foxtrot", "Golf", "Hotel", "India", "Juliett",
}
