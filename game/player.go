package game

// Authoritative per-player combat state. Owned by exactly one session;
// only the session's loop mutates it.

type Player struct {
	ConnID    string
	Name      string
	MarkerID  int
	Lives     int
	Kills     int
	Score     int
	Reloading bool
}

func NewPlayer(connID, name string, markerID int) *Player {
	return &Player{
		ConnID:   connID,
		Name:     name,
		MarkerID: markerID,
		Lives:    StartingLives,
	}
}

// FindByConn returns the player owned by the given connection, or nil.
func FindByConn(players []*Player, connID string) *Player {
	for _, p := range players {
		if p.ConnID == connID {
			return p
		}
	}
	return nil
}

// FindByMarker returns the player wearing the given marker, or nil.
func FindByMarker(players []*Player, markerID int) *Player {
	for _, p := range players {
		if p.MarkerID == markerID {
			return p
		}
	}
	return nil
}

// Alive counts players with lives remaining.
func Alive(players []*Player) int {
	n := 0
	for _, p := range players {
		if p.Lives > 0 {
			n++
		}
	}
	return n
}

// Winner returns the sole surviving player, or nil if zero or more than
// one player is still alive.
func Winner(players []*Player) *Player {
	var w *Player
	for _, p := range players {
		if p.Lives > 0 {
			if w != nil {
				return nil
			}
			w = p
		}
	}
	return w
}
