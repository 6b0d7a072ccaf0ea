package session

import (
	"context"
	"sync"
	"time"

	"quiz-forge/internal/domain"
)

type memoryEntry struct {
	session   *domain.Session
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryStore keeps sessions in process memory. Entries expire ttl after their
// last save; a zero ttl keeps them until deleted.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get implements domain.SessionStore
func (m *MemoryStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	m.mu.RLock()
	entry, ok := m.entries[id]
	m.mu.RUnlock()

	if !ok {
		return nil, domain.NewSessionNotFoundError(id)
	}
	if now := m.now(); entry.expired(now) {
		m.deleteIfExpired(id, now)
		return nil, domain.NewSessionNotFoundError(id)
	}
	return entry.session, nil
}

// deleteIfExpired removes id only if the entry held under the write lock is
// still expired, so a Save that landed after the read is kept.
func (m *MemoryStore) deleteIfExpired(id string, now time.Time) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[id]
	if !ok || !entry.expired(now) {
		return false
	}
	delete(m.entries, id)
	return true
}

// Save implements domain.SessionStore
func (m *MemoryStore) Save(ctx context.Context, session *domain.Session) error {
	entry := memoryEntry{session: session}
	if m.ttl > 0 {
		entry.expiresAt = m.now().Add(m.ttl)
	}

	m.mu.Lock()
	m.entries[session.ID] = entry
	m.mu.Unlock()
	return nil
}

// Delete implements domain.SessionStore
func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	delete(m.entries, id)
	m.mu.Unlock()
	return nil
}

// PurgeExpired drops every expired entry and returns how many were removed.
func (m *MemoryStore) PurgeExpired() int {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, entry := range m.entries {
		if entry.expired(now) {
			delete(m.entries, id)
			removed++
		}
	}
	return removed
}

var _ domain.SessionStore = (*MemoryStore)(nil)
