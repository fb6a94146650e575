package session

import (
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"lasertag/game"
	"lasertag/protocol"
)

type Status int

const (
	Forming Status = iota
	Active
	Ended
)

// Session is a single game instance. All state below is owned by the Run
// goroutine; the only way in is the Inbox, so commands never interleave.
type Session struct {
	Code  string
	Inbox chan any

	status    Status
	players   []*game.Player
	subs      map[string]Conn
	names     *game.NamePool
	startedAt time.Time

	reloadDelay time.Duration
	count       atomic.Int32 // player count, readable off-loop by the manager
	quit        chan struct{}

	OnEmpty func(code string) // called when the last subscriber leaves
	log     *zap.SugaredLogger
}

func New(code string, log *zap.SugaredLogger) *Session {
	return &Session{
		Code:        code,
		Inbox:       make(chan any, 256),
		subs:        make(map[string]Conn),
		names:       game.NewNamePool(),
		reloadDelay: game.ReloadDuration,
		quit:        make(chan struct{}),
		log:         log,
	}
}

func (s *Session) Stop() {
	close(s.quit)
}

// NumPlayers returns the current player count.
func (s *Session) NumPlayers() int {
	return int(s.count.Load())
}

func (s *Session) Run() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-s.quit:
			return
		case cmd := <-s.Inbox:
			s.handleCommand(cmd)
		case <-ticker.C:
			if s.status == Active {
				elapsed := int(time.Since(s.startedAt).Seconds())
				s.broadcast(protocol.MsgGameTime, protocol.GameTime{Seconds: elapsed})
			}
		}
	}
}

func (s *Session) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Join:
		s.handleJoin(c)
	case Watch:
		s.subs[c.ConnID] = c.Conn
		s.sendTo(c.Conn, protocol.MsgPlayersUpdate, s.snapshot())
	case Start:
		s.handleStart(c)
	case Shoot:
		s.handleShoot(c)
	case Bomb:
		s.handleBomb(c)
	case Leave:
		s.handleLeave(c.ConnID)
	case reloadDone:
		s.handleReloadDone(c.ConnID)
	}
}

func (s *Session) handleJoin(c Join) {
	if s.status != Forming {
		s.sendError(c.Conn, game.ErrGameStarted)
		return
	}
	if len(s.players) >= game.MaxPlayers {
		s.sendError(c.Conn, game.ErrGameFull)
		return
	}
	if game.FindByConn(s.players, c.ConnID) != nil {
		// Duplicate join from the same connection is a silent no-op.
		return
	}
	if err := game.ValidateMarkerID(c.MarkerID); err != nil {
		s.sendError(c.Conn, err)
		return
	}
	if game.FindByMarker(s.players, c.MarkerID) != nil {
		s.sendError(c.Conn, game.ErrMarkerIDInUse)
		return
	}
	name, err := s.names.Take()
	if err != nil {
		// Pool size matches capacity, so this means broken bookkeeping.
		s.log.Errorw("name pool exhausted below capacity", "code", s.Code, "players", len(s.players))
		s.sendError(c.Conn, err)
		return
	}

	p := game.NewPlayer(c.ConnID, name, c.MarkerID)
	s.players = append(s.players, p)
	s.count.Store(int32(len(s.players)))
	s.subs[c.ConnID] = c.Conn

	s.sendTo(c.Conn, protocol.MsgJoinedGame, protocol.JoinedGame{Name: name, MarkerID: c.MarkerID})
	s.broadcast(protocol.MsgPlayersUpdate, s.snapshot())
	s.activity("%s joined the game", name)
	s.log.Infow("player joined", "code", s.Code, "name", name, "marker", c.MarkerID)
}

func (s *Session) handleStart(c Start) {
	if s.status != Forming {
		s.sendError(c.Conn, game.ErrGameStarted)
		return
	}
	if len(s.players) < game.MinPlayersToStart {
		s.sendError(c.Conn, game.ErrNotEnoughPlayers)
		return
	}
	s.status = Active
	s.startedAt = time.Now()
	s.broadcast(protocol.MsgGameStarted, nil)
	s.activity("The game has started")
	s.log.Infow("game started", "code", s.Code, "players", len(s.players))
}

func (s *Session) handleShoot(c Shoot) {
	if s.status != Active {
		// Late or early shot racing the session state; not an error.
		s.log.Debugw("dropped stale shoot", "code", s.Code, "conn", c.ConnID)
		return
	}
	res, err := game.ResolveShot(s.players, c.ConnID, c.TargetMarkerID)
	if err != nil {
		s.sendError(c.Conn, err)
		return
	}

	s.scheduleReload(res.Shooter.ConnID)
	if !res.Hit {
		// Target was already out; the trigger pull still costs the reload.
		return
	}

	s.activity("%s hit %s", res.Shooter.Name, res.Target.Name)
	s.activity("%s gained %d points", res.Shooter.Name, game.HitScore)
	if res.Kill {
		s.notify(res.Target.ConnID, protocol.MsgEliminated, nil)
		s.activity("%s was eliminated", res.Target.Name)
		s.activity("%s eliminated %s", res.Shooter.Name, res.Target.Name)
	}
	s.checkWin()
	s.broadcast(protocol.MsgPlayersUpdate, s.snapshot())
}

func (s *Session) handleBomb(c Bomb) {
	if s.status != Active {
		s.log.Debugw("dropped stale bomb", "code", s.Code, "conn", c.ConnID)
		return
	}
	res, err := game.ResolveBomb(s.players, c.ConnID)
	if err != nil {
		s.sendError(c.Conn, err)
		return
	}

	s.activity("%s detonated a bomb", res.Actor.Name)
	for _, v := range res.Victims {
		s.activity("%s was caught in %s's bomb", v.Name, res.Actor.Name)
	}
	for _, k := range res.Killed {
		s.notify(k.ConnID, protocol.MsgEliminated, nil)
		s.activity("%s was eliminated", k.Name)
		s.activity("%s eliminated %s", res.Actor.Name, k.Name)
	}
	s.checkWin()
	s.broadcast(protocol.MsgPlayersUpdate, s.snapshot())
}

func (s *Session) handleReloadDone(connID string) {
	p := game.FindByConn(s.players, connID)
	if p == nil {
		return // left mid-reload
	}
	p.Reloading = false
	s.notify(connID, protocol.MsgReloadComplete, nil)
}

func (s *Session) handleLeave(connID string) {
	if p := game.FindByConn(s.players, connID); p != nil {
		for i, other := range s.players {
			if other == p {
				s.players = append(s.players[:i], s.players[i+1:]...)
				break
			}
		}
		s.count.Store(int32(len(s.players)))
		s.names.Return(p.Name)
		delete(s.subs, connID)

		s.broadcast(protocol.MsgPlayersUpdate, s.snapshot())
		s.activity("%s left the game", p.Name)
		s.checkWin()
		s.log.Infow("player left", "code", s.Code, "name", p.Name)
	} else if c, ok := s.subs[connID]; ok {
		// Watcher disconnect needs no game mutation.
		delete(s.subs, connID)
		_ = c.Close()
	}

	if len(s.subs) == 0 && s.OnEmpty != nil {
		s.OnEmpty(s.Code)
	}
}

// checkWin ends the session when one or zero players remain alive.
// Ending it here is what makes each announcement fire at most once.
func (s *Session) checkWin() {
	if s.status != Active {
		return
	}
	if game.Alive(s.players) == 0 {
		// No survivors: a bomb wipe, or everyone left. Nobody to crown.
		s.status = Ended
		s.activity("The game has ended")
		s.log.Infow("game ended with no survivors", "code", s.Code)
		return
	}
	w := game.Winner(s.players)
	if w == nil {
		return
	}
	s.status = Ended
	s.activity("%s wins the game", w.Name)
	s.log.Infow("game won", "code", s.Code, "winner", w.Name)
}

func (s *Session) scheduleReload(connID string) {
	time.AfterFunc(s.reloadDelay, func() {
		select {
		case s.Inbox <- reloadDone{ConnID: connID}:
		case <-s.quit:
		}
	})
}

func (s *Session) snapshot() protocol.PlayersUpdate {
	out := protocol.PlayersUpdate{Players: make([]protocol.PlayerSnapshot, 0, len(s.players))}
	for _, p := range s.players {
		out.Players = append(out.Players, protocol.PlayerSnapshot{
			ID:        p.ConnID,
			Name:      p.Name,
			MarkerID:  p.MarkerID,
			Lives:     p.Lives,
			Kills:     p.Kills,
			Score:     p.Score,
			Reloading: p.Reloading,
		})
	}
	return out
}

func (s *Session) broadcast(msgType string, payload any) {
	b, err := protocol.Encode(msgType, payload)
	if err != nil {
		s.log.Errorw("encode broadcast", "code", s.Code, "type", msgType, "err", err)
		return
	}
	var failed []string
	for id, c := range s.subs {
		if err := c.Send(b); err != nil {
			failed = append(failed, id)
		}
	}
	for _, id := range failed {
		// Dead send side; the transport will follow up with a Leave.
		if c, ok := s.subs[id]; ok {
			_ = c.Close()
			delete(s.subs, id)
		}
	}
}

func (s *Session) activity(format string, args ...any) {
	s.broadcast(protocol.MsgPlayerAction, protocol.PlayerAction{Text: fmt.Sprintf(format, args...)})
}

// notify sends to a subscriber by connection id, if still present.
func (s *Session) notify(connID, msgType string, payload any) {
	if c, ok := s.subs[connID]; ok {
		s.sendTo(c, msgType, payload)
	}
}

func (s *Session) sendTo(c Conn, msgType string, payload any) {
	b, err := protocol.Encode(msgType, payload)
	if err != nil {
		s.log.Errorw("encode send", "code", s.Code, "type", msgType, "err", err)
		return
	}
	_ = c.Send(b)
}

func (s *Session) sendError(c Conn, err error) {
	s.sendTo(c, protocol.MsgError, protocol.Error{Message: err.Error()})
}
