// store/memory.go - In-memory user record store
package store

import (
	"context"
	"strings"
	"sync"

	"animalquiz/catalog"
	"animalquiz/models"
)

// Memory is a map-backed UserStore for development and tests. State is
// process-wide, reinitialized at startup, with no persistence guarantee.
type Memory struct {
	cat *catalog.Catalog

	mu    sync.RWMutex
	users map[string]*models.UserRecord
	locks map[string]*sync.Mutex
}

// NewMemory returns an empty in-memory store.
func NewMemory(cat *catalog.Catalog) *Memory {
	return &Memory{
		cat:   cat,
		users: make(map[string]*models.UserRecord),
		locks: make(map[string]*sync.Mutex),
	}
}

func (m *Memory) Create(_ context.Context, rec *models.UserRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.users[rec.ID]; exists {
		return ErrAlreadyExists
	}
	for _, existing := range m.users {
		if strings.EqualFold(existing.Username, rec.Username) {
			return ErrAlreadyExists
		}
		if rec.Email != nil && existing.Email != nil && strings.EqualFold(*existing.Email, *rec.Email) {
			return ErrAlreadyExists
		}
	}
	m.users[rec.ID] = rec.Clone()
	return nil
}

func (m *Memory) Get(_ context.Context, id string) (*models.UserRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return rec.Clone(), nil
}

func (m *Memory) GetByUsername(_ context.Context, username string) (*models.UserRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, rec := range m.users {
		if strings.EqualFold(rec.Username, username) {
			return rec.Clone(), nil
		}
	}
	return nil, ErrNotFound
}

// Mutate holds the identity's lock across the whole read-modify-write cycle,
// so the transform sees a stable record and no concurrent Mutate for the same
// identity can interleave.
func (m *Memory) Mutate(_ context.Context, id string, fn MutateFunc) (*models.UserRecord, error) {
	lock := m.identityLock(id)
	lock.Lock()
	defer lock.Unlock()

	m.mu.RLock()
	rec, ok := m.users[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	next := rec.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.users[id] = next
	m.mu.Unlock()
	return next.Clone(), nil
}

// UpdateProfile holds the write lock across the uniqueness check and the
// commit, so concurrent renames to the same name cannot both pass the check.
func (m *Memory) UpdateProfile(_ context.Context, id, username string) (*models.UserRecord, error) {
	lock := m.identityLock(id)
	lock.Lock()
	defer lock.Unlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	for otherID, other := range m.users {
		if otherID != id && strings.EqualFold(other.Username, username) {
			return nil, ErrAlreadyExists
		}
	}

	next := rec.Clone()
	next.Username = username
	m.users[id] = next
	return next.Clone(), nil
}

func (m *Memory) Reset(ctx context.Context, id string) (*models.UserRecord, error) {
	return m.Mutate(ctx, id, func(rec *models.UserRecord) error {
		rec.ResetGameData(m.cat.EmptyProgress())
		return nil
	})
}

func (m *Memory) ListAll(_ context.Context) ([]*models.UserRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*models.UserRecord, 0, len(m.users))
	for _, rec := range m.users {
		out = append(out, rec.Clone())
	}
	return out, nil
}

func (m *Memory) identityLock(id string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	lock, ok := m.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[id] = lock
	}
	return lock
}
