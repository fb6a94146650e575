package session

import (
	"crypto/rand"
	"math/big"
	"sync"

	"go.uber.org/zap"
)

// Info is returned by the API for the active game list.
type Info struct {
	Code    string `json:"code"`
	Players int    `json:"players"`
}

// Manager owns the code -> session index. Sessions are created explicitly
// by create_game and removed when the last subscriber leaves.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	log      *zap.SugaredLogger
}

func NewManager(log *zap.SugaredLogger) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		log:      log,
	}
}

const codeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
const codeLength = 6

// Create mints a unique code, starts the session loop, and returns the code.
func (m *Manager) Create() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	for {
		code := generateCode(codeLength)
		if _, exists := m.sessions[code]; exists {
			continue
		}
		s := New(code, m.log)
		s.OnEmpty = func(c string) {
			m.remove(c)
		}
		m.sessions[code] = s
		go s.Run()
		m.log.Infow("session created", "code", code)
		return code
	}
}

func (m *Manager) Get(code string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[code]
	return s, ok
}

func (m *Manager) remove(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[code]; ok {
		s.Stop()
		delete(m.sessions, code)
		m.log.Infow("session removed", "code", code)
	}
}

// List returns all active sessions with code and player count.
func (m *Manager) List() []Info {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Info, 0, len(m.sessions))
	for code, s := range m.sessions {
		out = append(out, Info{Code: code, Players: s.NumPlayers()})
	}
	return out
}

func generateCode(n int) string {
	b := make([]byte, n)
	max := big.NewInt(int64(len(codeChars)))
	for i := range b {
		idx, _ := rand.Int(rand.Reader, max)
		b[i] = codeChars[idx.Int64()]
	}
	return string(b)
}
