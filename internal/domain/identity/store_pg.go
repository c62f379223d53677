package identity

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"hrms/internal/platform/db"
)

type Store struct {
	DB db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{DB: q}
}

func (s *Store) FindByLogin(ctx context.Context, identifier string) (Identity, string, error) {
	var found Identity
	var hash string
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, name, email, role, department, designation, timezone, company_timezone, password_hash
    FROM identities
    WHERE lower(employee_id) = $1 OR lower(email) = $1
  `, identifier).Scan(&found.ID, &found.EmployeeID, &found.Name, &found.Email, &found.Role, &found.Department, &found.Designation, &found.Timezone, &found.CompanyTimezone, &hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return Identity{}, "", ErrNotFound
	}
	if err != nil {
		return Identity{}, "", err
	}
	return found, hash, nil
}

func (s *Store) GetByID(ctx context.Context, id string) (Identity, error) {
	var found Identity
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, name, email, role, department, designation, timezone, company_timezone
    FROM identities
    WHERE id = $1
  `, id).Scan(&found.ID, &found.EmployeeID, &found.Name, &found.Email, &found.Role, &found.Department, &found.Designation, &found.Timezone, &found.CompanyTimezone)
	if errors.Is(err, pgx.ErrNoRows) {
		return Identity{}, ErrNotFound
	}
	if err != nil {
		return Identity{}, err
	}
	return found, nil
}

func (s *Store) ListDirectory(ctx context.Context, query, department string) ([]Identity, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, name, email, role, department, designation, timezone, company_timezone
    FROM identities
    WHERE ($1 = '' OR lower(name) LIKE '%'||$1||'%' OR lower(employee_id) LIKE '%'||$1||'%' OR lower(email) LIKE '%'||$1||'%')
      AND ($2 = '' OR department = $2)
    ORDER BY employee_id
  `, query, department)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Identity
	for rows.Next() {
		var entry Identity
		if err := rows.Scan(&entry.ID, &entry.EmployeeID, &entry.Name, &entry.Email, &entry.Role, &entry.Department, &entry.Designation, &entry.Timezone, &entry.CompanyTimezone); err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

func (s *Store) Departments(ctx context.Context) ([]string, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT DISTINCT department
    FROM identities
    WHERE department <> ''
    ORDER BY department
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var department string
		if err := rows.Scan(&department); err != nil {
			return nil, err
		}
		out = append(out, department)
	}
	return out, rows.Err()
}

func (s *Store) UpdateTimezone(ctx context.Context, id, zone string) error {
	tag, err := s.DB.Exec(ctx, "UPDATE identities SET timezone = $1 WHERE id = $2", zone, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) CreateSession(ctx context.Context, userID, tokenHash string, expires time.Time) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO sessions (user_id, token_hash, expires_at)
    VALUES ($1,$2,$3)
  `, userID, tokenHash, expires)
	return err
}

func (s *Store) SessionValid(ctx context.Context, userID, tokenHash string) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1)
    FROM sessions
    WHERE user_id = $1 AND token_hash = $2 AND expires_at > now() AND revoked_at IS NULL
  `, userID, tokenHash).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) RevokeSession(ctx context.Context, userID, tokenHash string) error {
	_, err := s.DB.Exec(ctx, "UPDATE sessions SET revoked_at = now() WHERE user_id = $1 AND token_hash = $2", userID, tokenHash)
	return err
}
