package payroll

import "context"

type StoreAPI interface {
	List(ctx context.Context) ([]Record, error)
	Get(ctx context.Context, id string) (Record, error)
}
