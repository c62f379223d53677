package project

import (
	"context"
	"strconv"
	"sync"
)

type MemoryStore struct {
	mu       sync.RWMutex
	projects []Project
	nextID   int
}

func NewMemoryStore(projects []Project) *MemoryStore {
	copied := make([]Project, len(projects))
	copy(copied, projects)
	return &MemoryStore{projects: copied, nextID: len(projects) + 1}
}

func (m *MemoryStore) List(_ context.Context) ([]Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Project, len(m.projects))
	copy(out, m.projects)
	return out, nil
}

func (m *MemoryStore) ListAssigned(_ context.Context, employeeID string) ([]Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Project
	for _, p := range m.projects {
		for _, assigned := range p.AssignedEmployees {
			if assigned == employeeID {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return Project{}, ErrNotFound
}

func (m *MemoryStore) Create(_ context.Context, p Project) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = "proj" + strconv.Itoa(m.nextID+100)
	m.nextID++
	// newest first, matching the board ordering
	m.projects = append([]Project{p}, m.projects...)
	return p.ID, nil
}

func (m *MemoryStore) Update(_ context.Context, p Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.projects {
		if m.projects[i].ID == p.ID {
			m.projects[i] = p
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStore) UpdateStatus(_ context.Context, id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.projects {
		if m.projects[i].ID == id {
			m.projects[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}
