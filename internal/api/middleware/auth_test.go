package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/corphq/api/internal/core/domain"
)

type stubSessionStore struct {
	sessions map[string]domain.Session
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]domain.Session)}
}

func (s *stubSessionStore) Save(_ context.Context, session domain.Session) error {
	s.sessions[session.Token] = session
	return nil
}

func (s *stubSessionStore) FindByToken(_ context.Context, token string) (*domain.Session, error) {
	session, ok := s.sessions[token]
	if !ok {
		return nil, nil
	}
	return &session, nil
}

func (s *stubSessionStore) Remove(_ context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

func (s *stubSessionStore) ApplyIndexes(context.Context) error { return nil }

func runSessionAuth(t *testing.T, store *stubSessionStore, authHeader string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/configured", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := SessionAuth(store)(next)(c)
	return rec, err
}

func TestSessionAuth_ValidToken(t *testing.T) {
	store := newStubSessionStore()
	_ = store.Save(context.Background(), domain.Session{
		Token:    "good-token",
		Username: "a",
		UserRole: domain.RoleUser,
		ExpireAt: time.Now().UTC().Add(10 * time.Minute),
	})

	rec, err := runSessionAuth(t, store, "Bearer good-token")
	if err != nil {
		t.Fatalf("expected request to pass, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSessionAuth_MissingHeader(t *testing.T) {
	_, err := runSessionAuth(t, newStubSessionStore(), "")

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestSessionAuth_UnknownToken(t *testing.T) {
	_, err := runSessionAuth(t, newStubSessionStore(), "Bearer ghost")

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestSessionAuth_ExpiredSession(t *testing.T) {
	store := newStubSessionStore()
	// TTL reaping can lag; the middleware must reject on its own.
	_ = store.Save(context.Background(), domain.Session{
		Token:    "stale-token",
		Username: "a",
		UserRole: domain.RoleUser,
		ExpireAt: time.Now().UTC().Add(-time.Minute),
	})

	_, err := runSessionAuth(t, store, "Bearer stale-token")

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestRequireRole(t *testing.T) {
	e := echo.New()
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	req := httptest.NewRequest(http.MethodGet, "/admin/configured", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.Set("role", domain.RoleUser)
	if err := RequireRole(domain.RoleUser)(next)(c); err != nil {
		t.Fatalf("expected allowed role to pass, got %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/admin/configured", nil)
	c = e.NewContext(req, httptest.NewRecorder())
	c.Set("role", "other")
	err := RequireRole(domain.RoleUser)(next)(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for disallowed role, got %v", err)
	}
}
