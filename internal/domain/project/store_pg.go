package project

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

const projectColumns = "id, name, start_date, end_date, duration_days, assigned_employees, status, created_by, description"

func scanProject(row pgx.Row) (Project, error) {
	var p Project
	err := row.Scan(&p.ID, &p.Name, &p.StartDate, &p.EndDate, &p.DurationDays, &p.AssignedEmployees, &p.Status, &p.CreatedBy, &p.Description)
	return p, err
}

func (s *Store) List(ctx context.Context) ([]Project, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+projectColumns+`
    FROM projects
    ORDER BY start_date DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) ListAssigned(ctx context.Context, employeeID string) ([]Project, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+projectColumns+`
    FROM projects
    WHERE $1 = ANY(assigned_employees)
    ORDER BY start_date DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (Project, error) {
	p, err := scanProject(s.DB.QueryRow(ctx, `
    SELECT `+projectColumns+`
    FROM projects
    WHERE id = $1
  `, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Project{}, ErrNotFound
	}
	if err != nil {
		return Project{}, err
	}
	return p, nil
}

func (s *Store) Create(ctx context.Context, p Project) (string, error) {
	var id string
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO projects (name, start_date, end_date, duration_days, assigned_employees, status, created_by, description)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    RETURNING id
  `, p.Name, p.StartDate, p.EndDate, p.DurationDays, p.AssignedEmployees, p.Status, p.CreatedBy, p.Description).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, p Project) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE projects
    SET name = $2, start_date = $3, end_date = $4, duration_days = $5, assigned_employees = $6, status = $7, description = $8
    WHERE id = $1
  `, p.ID, p.Name, p.StartDate, p.EndDate, p.DurationDays, p.AssignedEmployees, p.Status, p.Description)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := s.DB.Exec(ctx, "UPDATE projects SET status = $2 WHERE id = $1", id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
