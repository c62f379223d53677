package leave

import (
	"context"
	"sort"
	"strconv"
	"sync"
)

type MemoryStore struct {
	mu       sync.RWMutex
	balances []Balance
	requests []Request
	nextID   int
}

func NewMemoryStore(balances []Balance, requests []Request) *MemoryStore {
	copiedBalances := make([]Balance, len(balances))
	copy(copiedBalances, balances)
	copiedRequests := make([]Request, len(requests))
	copy(copiedRequests, requests)
	return &MemoryStore{balances: copiedBalances, requests: copiedRequests, nextID: len(requests) + 1}
}

func (m *MemoryStore) ListBalances(_ context.Context, employeeID string) ([]Balance, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Balance
	for _, balance := range m.balances {
		if balance.EmployeeID == employeeID {
			out = append(out, balance)
		}
	}
	return out, nil
}

func (m *MemoryStore) BalanceFor(_ context.Context, employeeID, leaveType string) (Balance, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, balance := range m.balances {
		if balance.EmployeeID == employeeID && balance.Type == leaveType {
			return balance, nil
		}
	}
	return Balance{}, ErrUnknownType
}

func (m *MemoryStore) AddUsed(_ context.Context, employeeID, leaveType string, days int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.balances {
		if m.balances[i].EmployeeID == employeeID && m.balances[i].Type == leaveType {
			m.balances[i].Used += days
			m.balances[i].Available = m.balances[i].Total - m.balances[i].Used
			return nil
		}
	}
	return ErrUnknownType
}

func (m *MemoryStore) ListRequests(_ context.Context, employeeID string) ([]Request, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Request
	for _, request := range m.requests {
		if request.EmployeeID == employeeID {
			out = append(out, request)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedDate.After(out[j].AppliedDate) })
	return out, nil
}

func (m *MemoryStore) ListPending(_ context.Context) ([]Request, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Request
	for _, request := range m.requests {
		if request.Status == StatusPending {
			out = append(out, request)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedDate.After(out[j].AppliedDate) })
	return out, nil
}

func (m *MemoryStore) GetRequest(_ context.Context, id string) (Request, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, request := range m.requests {
		if request.ID == id {
			return request, nil
		}
	}
	return Request{}, ErrNotFound
}

func (m *MemoryStore) CreateRequest(_ context.Context, request Request) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	request.ID = "lr" + strconv.Itoa(m.nextID)
	m.nextID++
	m.requests = append(m.requests, request)
	return request.ID, nil
}

func (m *MemoryStore) UpdateRequestStatus(_ context.Context, id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.requests {
		if m.requests[i].ID == id {
			m.requests[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}
