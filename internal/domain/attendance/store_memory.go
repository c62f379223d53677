package attendance

import (
	"context"
	"sort"
	"sync"
	"time"
)

type MemoryStore struct {
	mu            sync.RWMutex
	records       []Record
	employeeCount int
}

func NewMemoryStore(records []Record, employeeCount int) *MemoryStore {
	copied := make([]Record, len(records))
	copy(copied, records)
	return &MemoryStore{records: copied, employeeCount: employeeCount}
}

func (m *MemoryStore) ListForEmployee(_ context.Context, employeeID string) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Record
	for _, record := range m.records {
		if record.EmployeeID == employeeID {
			out = append(out, record)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (m *MemoryStore) LatestForEmployee(ctx context.Context, employeeID string) (Record, bool, error) {
	records, err := m.ListForEmployee(ctx, employeeID)
	if err != nil || len(records) == 0 {
		return Record{}, false, err
	}
	return records[0], true, nil
}

func (m *MemoryStore) ListForDate(_ context.Context, day time.Time) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	y, mo, d := day.UTC().Date()
	var out []Record
	for _, record := range m.records {
		ry, rmo, rd := record.Date.UTC().Date()
		if ry == y && rmo == mo && rd == d {
			out = append(out, record)
		}
	}
	return out, nil
}

func (m *MemoryStore) CountEmployees(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.employeeCount, nil
}
