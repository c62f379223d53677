package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hrms/internal/domain/identity"
)

func issueToken(t *testing.T, store *identity.MemoryStore, secret, userID, role string) string {
	t.Helper()

	sessionID := "session-" + userID
	if err := store.CreateSession(t.Context(), userID, identity.HashToken(sessionID), time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("create session: %v", err)
	}
	token, err := identity.GenerateToken(secret, identity.Claims{UserID: userID, RoleName: role, SessionID: sessionID}, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func TestAuthPopulatesUser(t *testing.T) {
	secret := "test-secret"
	store := identity.NewMemoryStore(nil, nil)
	token := issueToken(t, store, secret, "1", identity.RoleAdmin)

	var seen identity.Claims
	var ok bool
	handler := Auth(secret, store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, ok = GetUser(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !ok || seen.UserID != "1" || seen.RoleName != identity.RoleAdmin {
		t.Fatalf("expected admin claims in context, got ok=%v claims=%+v", ok, seen)
	}
}

func TestAuthIgnoresRevokedSession(t *testing.T) {
	secret := "test-secret"
	store := identity.NewMemoryStore(nil, nil)
	token := issueToken(t, store, secret, "1", identity.RoleAdmin)

	if err := store.RevokeSession(t.Context(), "1", identity.HashToken("session-1")); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	handler := Auth(secret, store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUser(r.Context()); ok {
			t.Fatal("revoked session must leave the request anonymous")
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)
}

func TestRequireRole(t *testing.T) {
	secret := "test-secret"
	store := identity.NewMemoryStore(nil, nil)
	adminToken := issueToken(t, store, secret, "1", identity.RoleAdmin)
	employeeToken := issueToken(t, store, secret, "3", identity.RoleEmployeeInternal)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := Auth(secret, store)(RequireRole(identity.RoleAdmin)(next))

	cases := []struct {
		name   string
		token  string
		expect int
	}{
		{"anonymous", "", http.StatusUnauthorized},
		{"employee", employeeToken, http.StatusForbidden},
		{"admin", adminToken, http.StatusNoContent},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.token != "" {
			req.Header.Set("Authorization", "Bearer "+tc.token)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != tc.expect {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.expect, rec.Code)
		}
	}
}

func TestRequestIDHeader(t *testing.T) {
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected a generated request id")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "upstream-id")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Header().Get("X-Request-ID") != "upstream-id" {
		t.Fatal("expected the upstream request id to be preserved")
	}
}
