package payroll

import (
	"context"
	"sync"
)

type MemoryStore struct {
	mu      sync.RWMutex
	records []Record
}

func NewMemoryStore(records []Record) *MemoryStore {
	copied := make([]Record, len(records))
	copy(copied, records)
	return &MemoryStore{records: copied}
}

func (m *MemoryStore) List(_ context.Context) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Record, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, record := range m.records {
		if record.ID == id {
			return record, nil
		}
	}
	return Record{}, ErrNotFound
}
