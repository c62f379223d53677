package identity

import (
	"context"
	"time"
)

type StoreAPI interface {
	// FindByLogin matches a normalized (trimmed, lowercased) identifier against
	// employee id or email and returns the identity with its password hash.
	FindByLogin(ctx context.Context, identifier string) (Identity, string, error)
	GetByID(ctx context.Context, id string) (Identity, error)
	ListDirectory(ctx context.Context, query, department string) ([]Identity, error)
	Departments(ctx context.Context) ([]string, error)
	UpdateTimezone(ctx context.Context, id, zone string) error

	CreateSession(ctx context.Context, userID, tokenHash string, expires time.Time) error
	SessionValid(ctx context.Context, userID, tokenHash string) (bool, error)
	RevokeSession(ctx context.Context, userID, tokenHash string) error
}
