package leave

import "context"

type StoreAPI interface {
	ListBalances(ctx context.Context, employeeID string) ([]Balance, error)
	BalanceFor(ctx context.Context, employeeID, leaveType string) (Balance, error)
	AddUsed(ctx context.Context, employeeID, leaveType string, days int) error

	ListRequests(ctx context.Context, employeeID string) ([]Request, error)
	ListPending(ctx context.Context) ([]Request, error)
	GetRequest(ctx context.Context, id string) (Request, error)
	CreateRequest(ctx context.Context, request Request) (string, error)
	UpdateRequestStatus(ctx context.Context, id, status string) error
}
