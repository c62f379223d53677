package attendance

import (
	"context"
	"time"
)

type StoreAPI interface {
	ListForEmployee(ctx context.Context, employeeID string) ([]Record, error)
	LatestForEmployee(ctx context.Context, employeeID string) (Record, bool, error)
	ListForDate(ctx context.Context, day time.Time) ([]Record, error)
	CountEmployees(ctx context.Context) (int, error)
}
