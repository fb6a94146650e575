package protocol

import (
	"encoding/json"
)

// Message types carried in the envelope. These names are the contract with
// the player app and the dashboard; renaming one breaks deployed clients.
const (
	// client -> server
	MsgCreateGame = "create_game"
	MsgJoinGame   = "join_game"
	MsgStartGame  = "start_game"
	MsgWatchGame  = "watch_game"
	MsgShoot      = "shoot"
	MsgBomb       = "bomb"

	// server -> one connection
	MsgGameCreated    = "game_created"
	MsgJoinedGame     = "joined_successfully"
	MsgReloadComplete = "reload_complete"
	MsgEliminated     = "eliminated"
	MsgError          = "error"

	// server -> all session subscribers
	MsgPlayersUpdate = "players_update"
	MsgGameStarted   = "game_started"
	MsgPlayerAction  = "player_action"
	MsgGameTime      = "game_time"
)

type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p,omitempty"` // raw payload bytes
}
