package session

import "sync"

// Locks serializes turns per user. The session read-modify-write is not
// atomic on its own; holding the user's lock for the whole turn keeps two
// concurrent messages from the same user from racing on step transitions.
type Locks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewLocks() *Locks {
	return &Locks{locks: make(map[string]*sync.Mutex)}
}

func (l *Locks) Lock(userID string) func() {
	l.mu.Lock()
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
