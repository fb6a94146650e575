package game

import "errors"

// Error texts are sent verbatim to the offending connection, so they are
// written for players, not operators.
var (
	ErrGameNotFound      = errors.New("game not found")
	ErrGameStarted       = errors.New("game has already started")
	ErrGameFull          = errors.New("game is full")
	ErrInvalidMarkerID   = errors.New("marker id must be between 0 and 14")
	ErrMarkerIDInUse     = errors.New("marker id is already taken")
	ErrNoNamesAvailable  = errors.New("no player names available")
	ErrShooterNotFound   = errors.New("you are not in this game")
	ErrTargetNotFound    = errors.New("target is not in this game")
	ErrShooterReloading  = errors.New("you are reloading")
	ErrCannotShootSelf   = errors.New("you cannot shoot yourself")
	ErrInsufficientScore = errors.New("not enough score to use the bomb")
	ErrNotEnoughPlayers  = errors.New("at least 4 players are required to start")
)

// ValidateMarkerID checks the client-chosen marker against the tag range.
func ValidateMarkerID(id int) error {
	if id < MarkerIDMin || id > MarkerIDMax {
		return ErrInvalidMarkerID
	}
	return nil
}
