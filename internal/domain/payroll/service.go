package payroll

import "context"

type Service struct {
	Store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

func (s *Service) List(ctx context.Context) ([]Record, error) {
	return s.Store.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Record, error) {
	return s.Store.Get(ctx, id)
}

// Summarize totals the register the way the payroll overview presents it:
// everything not yet paid counts as pending.
func (s *Service) Summarize(ctx context.Context) (Summary, error) {
	records, err := s.Store.List(ctx)
	if err != nil {
		return Summary{}, err
	}

	var summary Summary
	for _, record := range records {
		summary.TotalNet += record.NetSalary
		if record.Status == StatusPaid {
			summary.PaidCount++
		} else {
			summary.PendingCount++
		}
	}
	return summary, nil
}
