package session

// Conn is the send side of a subscribed connection. The transport owns the
// receive side and posts commands here.
type Conn interface {
	Send([]byte) error
	Close() error
}

// Commands posted to a session's inbox. Each carries everything its
// handler needs; handlers never close over connection state.

// Join: a connection wants to enter the game as a player.
type Join struct {
	ConnID   string
	MarkerID int
	Conn     Conn
}

// Watch: subscribe to broadcasts without becoming a player (dashboards).
type Watch struct {
	ConnID string
	Conn   Conn
}

// Start: move the session from Forming to Active.
type Start struct {
	ConnID string
	Conn   Conn
}

// Shoot: the shooter's camera recognized a target marker.
type Shoot struct {
	ConnID         string
	TargetMarkerID int
	Conn           Conn
}

// Bomb: area attack paid for with accumulated score.
type Bomb struct {
	ConnID string
	Conn   Conn
}

// Leave: issued on disconnect, for players and watchers alike.
type Leave struct {
	ConnID string
}

// reloadDone re-enters the serialized loop when a reload timer fires.
type reloadDone struct {
	ConnID string
}
