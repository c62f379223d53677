package leave

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

type Submission struct {
	Type      string
	StartDate time.Time
	EndDate   time.Time
	Reason    string
}

// Submit validates a leave request against the employee's balance and
// persists it as pending. The balance itself is not touched at submission;
// Used only moves on approval.
func (s *Service) Submit(ctx context.Context, employeeID, employeeName string, submission Submission) (Request, error) {
	if !ValidType(submission.Type) {
		return Request{}, ErrUnknownType
	}

	days := RequestDays(submission.StartDate, submission.EndDate)

	balance, err := s.Store.BalanceFor(ctx, employeeID, submission.Type)
	if err != nil {
		return Request{}, err
	}
	if days > balance.Available {
		return Request{}, ErrInsufficientBalance
	}

	request := Request{
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		Type:         submission.Type,
		StartDate:    submission.StartDate,
		EndDate:      submission.EndDate,
		Days:         days,
		Reason:       submission.Reason,
		Status:       StatusPending,
		AppliedDate:  time.Now().UTC(),
	}

	id, err := s.Store.CreateRequest(ctx, request)
	if err != nil {
		return Request{}, err
	}
	request.ID = id
	return request, nil
}

func (s *Service) Balances(ctx context.Context, employeeID string) ([]Balance, error) {
	return s.Store.ListBalances(ctx, employeeID)
}

func (s *Service) Requests(ctx context.Context, employeeID string) ([]Request, error) {
	return s.Store.ListRequests(ctx, employeeID)
}

func (s *Service) Pending(ctx context.Context) ([]Request, error) {
	return s.Store.ListPending(ctx)
}

// Approve moves a pending request to approved and charges its days against
// the employee's used balance.
func (s *Service) Approve(ctx context.Context, requestID string) error {
	request, err := s.Store.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if request.Status != StatusPending {
		return ErrNotPending
	}
	if err := s.Store.UpdateRequestStatus(ctx, requestID, StatusApproved); err != nil {
		return err
	}
	return s.Store.AddUsed(ctx, request.EmployeeID, request.Type, request.Days)
}

func (s *Service) Reject(ctx context.Context, requestID string) error {
	request, err := s.Store.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if request.Status != StatusPending {
		return ErrNotPending
	}
	return s.Store.UpdateRequestStatus(ctx, requestID, StatusRejected)
}
