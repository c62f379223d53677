package identity

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"strings"
	"time"
)

type Service struct {
	Store    StoreAPI
	Secret   string
	TokenTTL time.Duration
}

func NewService(store StoreAPI, secret string, ttl time.Duration) *Service {
	return &Service{Store: store, Secret: secret, TokenTTL: ttl}
}

type Session struct {
	Identity Identity `json:"user"`
	Token    string   `json:"token"`
}

// Login normalizes the identifier (trim, lowercase) and password (trim),
// resolves the directory entry by employee id or email and verifies the
// password. Unknown identifier and wrong password both map to
// ErrInvalidCredentials so callers cannot enumerate accounts.
func (s *Service) Login(ctx context.Context, identifier, password string) (Session, error) {
	identifier = strings.ToLower(strings.TrimSpace(identifier))
	password = strings.TrimSpace(password)
	if identifier == "" || password == "" {
		return Session{}, ErrInvalidCredentials
	}

	found, hash, err := s.Store.FindByLogin(ctx, identifier)
	if err != nil {
		return Session{}, ErrInvalidCredentials
	}
	if err := CheckPassword(hash, password); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	sessionID, err := generateSessionID()
	if err != nil {
		return Session{}, err
	}
	if err := s.Store.CreateSession(ctx, found.ID, HashToken(sessionID), time.Now().Add(s.TokenTTL)); err != nil {
		return Session{}, err
	}

	token, err := GenerateToken(s.Secret, Claims{
		UserID:     found.ID,
		EmployeeID: found.EmployeeID,
		RoleName:   found.Role,
		SessionID:  sessionID,
	}, s.TokenTTL)
	if err != nil {
		return Session{}, err
	}

	return Session{Identity: found, Token: token}, nil
}

// Logout revokes the session unconditionally; a missing or already revoked
// session is not an error.
func (s *Service) Logout(ctx context.Context, userID, sessionID string) error {
	if userID == "" || sessionID == "" {
		return nil
	}
	return s.Store.RevokeSession(ctx, userID, HashToken(sessionID))
}

func (s *Service) Current(ctx context.Context, userID string) (Identity, error) {
	return s.Store.GetByID(ctx, userID)
}

// Directory lists identities matching a case-insensitive substring of name,
// employee id or email, optionally narrowed to a department. An empty query
// matches everyone; department "all" (or empty) matches every department.
func (s *Service) Directory(ctx context.Context, query, department string) ([]Identity, error) {
	if strings.EqualFold(strings.TrimSpace(department), "all") {
		department = ""
	}
	return s.Store.ListDirectory(ctx, strings.ToLower(strings.TrimSpace(query)), strings.TrimSpace(department))
}

func (s *Service) Departments(ctx context.Context) ([]string, error) {
	return s.Store.Departments(ctx)
}

func (s *Service) UpdateTimezone(ctx context.Context, userID, zone string) error {
	return s.Store.UpdateTimezone(ctx, userID, zone)
}

func generateSessionID() (string, error) {
	buff := make([]byte, 32)
	if _, err := rand.Read(buff); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buff), nil
}
