package network

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"lasertag/game"
	"lasertag/protocol"
	"lasertag/session"
)

// Handler accepts websocket connections and turns inbound frames into
// session commands. It holds no game state of its own.
type Handler struct {
	manager  *session.Manager
	registry *Registry
	upgrader websocket.Upgrader
	log      *zap.SugaredLogger
}

func NewHandler(m *session.Manager, allowOrigin string, log *zap.SugaredLogger) *Handler {
	return &Handler{
		manager:  m,
		registry: NewRegistry(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if allowOrigin == "*" {
					return true
				}
				return r.Header.Get("Origin") == allowOrigin
			},
		},
		log: log,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Infow("upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}

	connID := uuid.NewString()
	c := newClient(ws)
	go c.writePump()
	h.log.Debugw("connection open", "conn", connID, "remote", r.RemoteAddr)

	h.readPump(c, connID)

	h.disconnect(connID)
	_ = c.Close()
	h.log.Debugw("connection closed", "conn", connID)
}

func (h *Handler) readPump(c *client, connID string) {
	c.ws.SetReadLimit(maxFrameSize)
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, payload, err := c.ws.ReadMessage()
		if err != nil {
			return
		}
		env, err := protocol.DecodeEnvelope(payload)
		if err != nil {
			h.log.Debugw("bad frame", "conn", connID, "err", err)
			continue
		}
		h.dispatch(c, connID, env)
	}
}

func (h *Handler) dispatch(c *client, connID string, env protocol.Envelope) {
	switch env.T {
	case protocol.MsgCreateGame:
		code := h.manager.Create()
		// Tie the creator to the new session so a dashboard that drops
		// before watching still tears the empty session down.
		h.attach(connID, code)
		h.reply(c, protocol.MsgGameCreated, protocol.GameCreated{Code: code})

	case protocol.MsgJoinGame:
		p, err := protocol.DecodePayload[protocol.JoinGame](env)
		if err != nil {
			h.replyError(c, err)
			return
		}
		s, ok := h.manager.Get(normalizeCode(p.GameID))
		if !ok {
			h.replyError(c, game.ErrGameNotFound)
			return
		}
		h.attach(connID, s.Code)
		s.Inbox <- session.Join{ConnID: connID, MarkerID: p.MarkerID, Conn: c}

	case protocol.MsgStartGame:
		p, err := protocol.DecodePayload[protocol.StartGame](env)
		if err != nil {
			h.replyError(c, err)
			return
		}
		s, ok := h.manager.Get(normalizeCode(p.GameID))
		if !ok {
			h.replyError(c, game.ErrGameNotFound)
			return
		}
		s.Inbox <- session.Start{ConnID: connID, Conn: c}

	case protocol.MsgWatchGame:
		p, err := protocol.DecodePayload[protocol.WatchGame](env)
		if err != nil {
			h.replyError(c, err)
			return
		}
		s, ok := h.manager.Get(normalizeCode(p.GameID))
		if !ok {
			h.replyError(c, game.ErrGameNotFound)
			return
		}
		h.attach(connID, s.Code)
		s.Inbox <- session.Watch{ConnID: connID, Conn: c}

	case protocol.MsgShoot:
		p, err := protocol.DecodePayload[protocol.Shoot](env)
		if err != nil {
			h.replyError(c, err)
			return
		}
		// Unknown game here means the session was torn down under a
		// late shot; drop it like any other stale action.
		if s, ok := h.manager.Get(normalizeCode(p.GameID)); ok {
			s.Inbox <- session.Shoot{ConnID: connID, TargetMarkerID: p.TargetMarkerID, Conn: c}
		}

	case protocol.MsgBomb:
		p, err := protocol.DecodePayload[protocol.Bomb](env)
		if err != nil {
			h.replyError(c, err)
			return
		}
		if s, ok := h.manager.Get(normalizeCode(p.GameID)); ok {
			s.Inbox <- session.Bomb{ConnID: connID, Conn: c}
		}

	default:
		h.log.Debugw("unknown message type", "conn", connID, "type", env.T)
	}
}

// attach points the connection at a session. A connection belongs to at
// most one session at a time, so switching games leaves the old one first.
func (h *Handler) attach(connID, code string) {
	prev, ok := h.registry.Set(connID, code)
	if !ok || prev == code {
		return
	}
	if s, ok := h.manager.Get(prev); ok {
		s.Inbox <- session.Leave{ConnID: connID}
	}
}

func (h *Handler) disconnect(connID string) {
	code, ok := h.registry.Remove(connID)
	if !ok {
		return
	}
	if s, ok := h.manager.Get(code); ok {
		s.Inbox <- session.Leave{ConnID: connID}
	}
}

func (h *Handler) reply(c *client, msgType string, payload any) {
	b, err := protocol.Encode(msgType, payload)
	if err != nil {
		h.log.Errorw("encode reply", "type", msgType, "err", err)
		return
	}
	_ = c.Send(b)
}

func (h *Handler) replyError(c *client, err error) {
	h.reply(c, protocol.MsgError, protocol.Error{Message: err.Error()})
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
