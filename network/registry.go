package network

import "sync"

// Registry tracks which session each connection is attached to, player and
// watcher alike. Pure bookkeeping: no game rules live here.
type Registry struct {
	mu    sync.RWMutex
	conns map[string]string // connID -> session code
}

func NewRegistry() *Registry {
	return &Registry{conns: make(map[string]string)}
}

// Set points the connection at a session and returns the code it was
// mapped to before, if any, so the caller can detach it from that session.
func (r *Registry) Set(connID, code string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.conns[connID]
	r.conns[connID] = code
	return prev, ok
}

func (r *Registry) Get(connID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	code, ok := r.conns[connID]
	return code, ok
}

// Remove drops the mapping and returns the code it pointed at, if any.
func (r *Registry) Remove(connID string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	code, ok := r.conns[connID]
	if ok {
		delete(r.conns, connID)
	}
	return code, ok
}
