package leave

import (
	"context"
	"errors"
	"testing"
)

func testStore() *MemoryStore {
	return NewMemoryStore([]Balance{
		{EmployeeID: "3", Type: TypePL, Total: 12, Used: 3, Available: 9},
		{EmployeeID: "3", Type: TypeCL, Total: 6, Used: 4, Available: 2},
		{EmployeeID: "3", Type: TypeACL, Total: 0, Used: 0, Available: 0},
	}, nil)
}

func TestSubmitWithinBalance(t *testing.T) {
	svc := NewService(testStore())

	request, err := svc.Submit(context.Background(), "3", "John Doe", Submission{
		Type:      TypePL,
		StartDate: day(2024, 4, 1),
		EndDate:   day(2024, 4, 3),
		Reason:    "Personal work",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if request.Days != 3 {
		t.Fatalf("expected 3 days, got %d", request.Days)
	}
	if request.Status != StatusPending {
		t.Fatalf("expected pending, got %s", request.Status)
	}

	requests, err := svc.Requests(context.Background(), "3")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(requests) != 1 {
		t.Fatalf("expected request to be persisted, got %d", len(requests))
	}
}

func TestSubmitOverBalanceRejected(t *testing.T) {
	store := testStore()
	svc := NewService(store)

	// 3 inclusive days against an available CL balance of 2.
	_, err := svc.Submit(context.Background(), "3", "John Doe", Submission{
		Type:      TypeCL,
		StartDate: day(2024, 4, 1),
		EndDate:   day(2024, 4, 3),
		Reason:    "Trip",
	})
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}

	requests, _ := store.ListRequests(context.Background(), "3")
	if len(requests) != 0 {
		t.Fatalf("rejected submission must not be persisted, got %d requests", len(requests))
	}
}

func TestSubmitDoesNotTouchBalance(t *testing.T) {
	store := testStore()
	svc := NewService(store)

	if _, err := svc.Submit(context.Background(), "3", "John Doe", Submission{
		Type:      TypePL,
		StartDate: day(2024, 4, 1),
		EndDate:   day(2024, 4, 2),
		Reason:    "Errand",
	}); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	balance, err := store.BalanceFor(context.Background(), "3", TypePL)
	if err != nil {
		t.Fatalf("balance lookup failed: %v", err)
	}
	if balance.Used != 3 || balance.Available != 9 {
		t.Fatalf("submission must not move the balance, got used=%d available=%d", balance.Used, balance.Available)
	}
}

func TestApproveChargesBalance(t *testing.T) {
	store := testStore()
	svc := NewService(store)

	request, err := svc.Submit(context.Background(), "3", "John Doe", Submission{
		Type:      TypePL,
		StartDate: day(2024, 4, 1),
		EndDate:   day(2024, 4, 2),
		Reason:    "Errand",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if err := svc.Approve(context.Background(), request.ID); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	balance, _ := store.BalanceFor(context.Background(), "3", TypePL)
	if balance.Used != 5 || balance.Available != 7 {
		t.Fatalf("expected used=5 available=7 after approval, got used=%d available=%d", balance.Used, balance.Available)
	}

	if err := svc.Approve(context.Background(), request.ID); !errors.Is(err, ErrNotPending) {
		t.Fatalf("expected ErrNotPending on double approval, got %v", err)
	}
}

func TestRejectLeavesBalanceAlone(t *testing.T) {
	store := testStore()
	svc := NewService(store)

	request, err := svc.Submit(context.Background(), "3", "John Doe", Submission{
		Type:      TypePL,
		StartDate: day(2024, 4, 1),
		EndDate:   day(2024, 4, 2),
		Reason:    "Errand",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if err := svc.Reject(context.Background(), request.ID); err != nil {
		t.Fatalf("reject failed: %v", err)
	}

	got, _ := store.GetRequest(context.Background(), request.ID)
	if got.Status != StatusRejected {
		t.Fatalf("expected rejected, got %s", got.Status)
	}
	balance, _ := store.BalanceFor(context.Background(), "3", TypePL)
	if balance.Used != 3 {
		t.Fatalf("reject must not charge the balance, got used=%d", balance.Used)
	}
}

func TestSubmitUnknownType(t *testing.T) {
	svc := NewService(testStore())
	_, err := svc.Submit(context.Background(), "3", "John Doe", Submission{
		Type:      "SICK",
		StartDate: day(2024, 4, 1),
		EndDate:   day(2024, 4, 1),
		Reason:    "Flu",
	})
	if !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
}
