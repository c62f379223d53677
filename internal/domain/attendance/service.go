package attendance

import (
	"context"
	"time"
)

type Service struct {
	Store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

func (s *Service) ListForEmployee(ctx context.Context, employeeID string) ([]Record, error) {
	return s.Store.ListForEmployee(ctx, employeeID)
}

func (s *Service) LatestForEmployee(ctx context.Context, employeeID string) (Record, bool, error) {
	return s.Store.LatestForEmployee(ctx, employeeID)
}

// StatsForDay aggregates the day's records into the dashboard counters.
// Overtime sums the supplied overtime fields, not anything recomputed from
// clock punches.
func (s *Service) StatsForDay(ctx context.Context, day time.Time) (Stats, error) {
	records, err := s.Store.ListForDate(ctx, day)
	if err != nil {
		return Stats{}, err
	}
	total, err := s.Store.CountEmployees(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{TotalEmployees: total}
	for _, record := range records {
		switch record.Status {
		case StatusPresent, StatusWFH:
			stats.PresentToday++
		case StatusAbsent:
			stats.AbsentToday++
		case StatusLeave:
			stats.OnLeaveToday++
		}
		if record.Overtime != nil {
			stats.OvertimeHours += *record.Overtime
		}
	}
	return stats, nil
}
