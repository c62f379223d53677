package leave

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"hrms/internal/platform/db"
)

type Store struct {
	DB db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{DB: q}
}

func (s *Store) ListBalances(ctx context.Context, employeeID string) ([]Balance, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT employee_id, leave_type, total, used, total - used
    FROM leave_balances
    WHERE employee_id = $1
    ORDER BY leave_type
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Balance
	for rows.Next() {
		var balance Balance
		if err := rows.Scan(&balance.EmployeeID, &balance.Type, &balance.Total, &balance.Used, &balance.Available); err != nil {
			return nil, err
		}
		out = append(out, balance)
	}
	return out, rows.Err()
}

func (s *Store) BalanceFor(ctx context.Context, employeeID, leaveType string) (Balance, error) {
	var balance Balance
	err := s.DB.QueryRow(ctx, `
    SELECT employee_id, leave_type, total, used, total - used
    FROM leave_balances
    WHERE employee_id = $1 AND leave_type = $2
  `, employeeID, leaveType).Scan(&balance.EmployeeID, &balance.Type, &balance.Total, &balance.Used, &balance.Available)
	if errors.Is(err, pgx.ErrNoRows) {
		return Balance{}, ErrUnknownType
	}
	if err != nil {
		return Balance{}, err
	}
	return balance, nil
}

func (s *Store) AddUsed(ctx context.Context, employeeID, leaveType string, days int) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE leave_balances
    SET used = used + $3
    WHERE employee_id = $1 AND leave_type = $2
  `, employeeID, leaveType, days)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUnknownType
	}
	return nil
}

const requestColumns = "id, employee_id, employee_name, leave_type, start_date, end_date, days, reason, status, applied_date"

func scanRequest(row pgx.Row) (Request, error) {
	var request Request
	err := row.Scan(&request.ID, &request.EmployeeID, &request.EmployeeName, &request.Type, &request.StartDate, &request.EndDate, &request.Days, &request.Reason, &request.Status, &request.AppliedDate)
	return request, err
}

func (s *Store) ListRequests(ctx context.Context, employeeID string) ([]Request, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+requestColumns+`
    FROM leave_requests
    WHERE employee_id = $1
    ORDER BY applied_date DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Request
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, request)
	}
	return out, rows.Err()
}

func (s *Store) ListPending(ctx context.Context) ([]Request, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+requestColumns+`
    FROM leave_requests
    WHERE status = $1
    ORDER BY applied_date DESC
  `, StatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Request
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, request)
	}
	return out, rows.Err()
}

func (s *Store) GetRequest(ctx context.Context, id string) (Request, error) {
	request, err := scanRequest(s.DB.QueryRow(ctx, `
    SELECT `+requestColumns+`
    FROM leave_requests
    WHERE id = $1
  `, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Request{}, ErrNotFound
	}
	if err != nil {
		return Request{}, err
	}
	return request, nil
}

func (s *Store) CreateRequest(ctx context.Context, request Request) (string, error) {
	var id string
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO leave_requests (employee_id, employee_name, leave_type, start_date, end_date, days, reason, status, applied_date)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    RETURNING id
  `, request.EmployeeID, request.EmployeeName, request.Type, request.StartDate, request.EndDate, request.Days, request.Reason, request.Status, request.AppliedDate).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) UpdateRequestStatus(ctx context.Context, id, status string) error {
	tag, err := s.DB.Exec(ctx, "UPDATE leave_requests SET status = $2 WHERE id = $1", id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
