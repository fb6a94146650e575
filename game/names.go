package game

// NamePool hands out callsigns from the fixed pool in order and takes
// them back when a player leaves, keeping names unique per session.
type NamePool struct {
	taken map[string]bool
}

func NewNamePool() *NamePool {
	return &NamePool{taken: make(map[string]bool)}
}

func (np *NamePool) Take() (string, error) {
	for _, name := range Callsigns {
		if !np.taken[name] {
			np.taken[name] = true
			return name, nil
		}
	}
	// Unreachable while pool size >= MaxPlayers and names are returned
	// on leave; reaching it means bookkeeping is broken.
	return "", ErrNoNamesAvailable
}

func (np *NamePool) Return(name string) {
	delete(np.taken, name)
}
