package session

import (
	"context"
	"sync"
	"time"
)

// Store holds one Session per user. Get returns (nil, nil) for users with no
// live session. Save refreshes the entry's TTL; idle sessions eventually
// expire and the user starts over at greeting.
type Store interface {
	Get(ctx context.Context, userID string) (*Session, error)
	Save(ctx context.Context, s *Session) error
}

// MemoryStore is the in-process Store used in tests and when redis is not
// configured. Same TTL semantics as the redis store, evicted lazily on Get.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
}

type memoryEntry struct {
	session   Session
	expiresAt time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &MemoryStore{ttl: ttl, entries: make(map[string]memoryEntry)}
}

func (m *MemoryStore) Get(ctx context.Context, userID string) (*Session, error) {
	_ = ctx
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[userID]
	if !ok {
		return nil, nil
	}
	if time.Now().After(e.expiresAt) {
		delete(m.entries, userID)
		return nil, nil
	}

	s := e.session
	s.normalize()
	return &s, nil
}

func (m *MemoryStore) Save(ctx context.Context, s *Session) error {
	_ = ctx
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[s.UserID] = memoryEntry{
		session:   *s,
		expiresAt: time.Now().Add(m.ttl),
	}
	return nil
}
