package identity

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryStore is the in-process directory used when no database is configured.
// It stands in for the external directory service the core would normally call.
type MemoryStore struct {
	mu        sync.RWMutex
	users     []Identity
	passwords map[string]string // user id -> bcrypt hash
	sessions  map[string]time.Time
}

func NewMemoryStore(users []Identity, passwords map[string]string) *MemoryStore {
	copied := make([]Identity, len(users))
	copy(copied, users)
	hashes := make(map[string]string, len(passwords))
	for id, hash := range passwords {
		hashes[id] = hash
	}
	return &MemoryStore{
		users:     copied,
		passwords: hashes,
		sessions:  map[string]time.Time{},
	}
}

func (m *MemoryStore) FindByLogin(_ context.Context, identifier string) (Identity, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, user := range m.users {
		if strings.ToLower(user.EmployeeID) == identifier || strings.ToLower(user.Email) == identifier {
			return user, m.passwords[user.ID], nil
		}
	}
	return Identity{}, "", ErrNotFound
}

func (m *MemoryStore) GetByID(_ context.Context, id string) (Identity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return Identity{}, ErrNotFound
}

func (m *MemoryStore) ListDirectory(_ context.Context, query, department string) ([]Identity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Identity
	for _, user := range m.users {
		if department != "" && user.Department != department {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(user.Name), query) &&
			!strings.Contains(strings.ToLower(user.EmployeeID), query) &&
			!strings.Contains(strings.ToLower(user.Email), query) {
			continue
		}
		out = append(out, user)
	}
	return out, nil
}

func (m *MemoryStore) Departments(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := map[string]bool{}
	var out []string
	for _, user := range m.users {
		if user.Department == "" || seen[user.Department] {
			continue
		}
		seen[user.Department] = true
		out = append(out, user.Department)
	}
	sort.Strings(out)
	return out, nil
}

func (m *MemoryStore) UpdateTimezone(_ context.Context, id, zone string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].ID == id {
			m.users[i].Timezone = zone
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) CreateSession(_ context.Context, userID, tokenHash string, expires time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[userID+":"+tokenHash] = expires
	return nil
}

func (m *MemoryStore) SessionValid(_ context.Context, userID, tokenHash string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	expires, ok := m.sessions[userID+":"+tokenHash]
	return ok && time.Now().Before(expires), nil
}

func (m *MemoryStore) RevokeSession(_ context.Context, userID, tokenHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID+":"+tokenHash)
	return nil
}
