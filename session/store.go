package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store keeps sessions by their opaque cookie identifier.
type Store interface {
	// Get returns the live session for id, or false if none exists
	// (including sessions that have idled out).
	Get(id string) (*Session, bool)
	// Put stores a session under its ID.
	Put(s *Session)
	// Destroy removes the session outright. Logging out goes through here:
	// the identity dies, it is not merely cleared of its user.
	Destroy(id string)
	// New creates, stores and returns a fresh anonymous session.
	New() *Session
	// Touch extends the session's expiry by the TTL from now.
	Touch(s *Session)
}

// MemoryStore is the in-process Store used by the app. Single process,
// single store; there is no multi-device or external session backend.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

func (m *MemoryStore) Get(id string) (*Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	// ExpiresAt is written by Touch under the same mutex, so the expiry
	// check has to happen while the lock is still held.
	expired := ok && s.Expired(m.now())
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if expired {
		// Expired sessions are reaped lazily, on the access that finds them.
		m.Destroy(id)
		return nil, false
	}
	return s, true
}

func (m *MemoryStore) Put(s *Session) {
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
}

func (m *MemoryStore) Destroy(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

func (m *MemoryStore) New() *Session {
	now := m.now()
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		ExpiresAt: now.Add(TTL),
	}
	m.Put(s)
	return s
}

func (m *MemoryStore) Touch(s *Session) {
	m.mu.Lock()
	s.ExpiresAt = m.now().Add(TTL)
	m.mu.Unlock()
}
