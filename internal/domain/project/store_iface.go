package project

import "context"

type StoreAPI interface {
	List(ctx context.Context) ([]Project, error)
	ListAssigned(ctx context.Context, employeeID string) ([]Project, error)
	Get(ctx context.Context, id string) (Project, error)
	Create(ctx context.Context, p Project) (string, error)
	Update(ctx context.Context, p Project) error
	UpdateStatus(ctx context.Context, id, status string) error
}
