package auth_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/backend"
	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/backend/backendtest"
	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/modules/auth"
)

type memStore struct {
	token   string
	deletes int
}

func (m *memStore) Get() (string, error)   { return m.token, nil }
func (m *memStore) Set(token string) error { m.token = token; return nil }
func (m *memStore) Delete() error          { m.token = ""; m.deletes++; return nil }

func newService(t *testing.T) (*auth.Service, *backendtest.Fake) {
	t.Helper()
	fake := backendtest.New()
	srv := httptest.NewServer(fake.Handler())
	t.Cleanup(srv.Close)
	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	return auth.NewService(backend.NewClient(srv.URL, 5*time.Second), l), fake
}

func TestLoginPersistsToken(t *testing.T) {
	svc, fake := newService(t)
	store := &memStore{}

	resp, err := svc.Login(context.Background(), store, fake.Email, fake.Password)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Token != fake.Token {
		t.Errorf("returned token = %q", resp.Token)
	}
	if store.token != fake.Token {
		t.Errorf("persisted token = %q", store.token)
	}
	if !auth.IsAuthenticated(store) {
		t.Error("IsAuthenticated = false after login")
	}
}

func TestLoginRejectedPersistsNothing(t *testing.T) {
	svc, fake := newService(t)
	store := &memStore{}

	_, err := svc.Login(context.Background(), store, fake.Email, "nope")
	if !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}
	var ae *auth.Error
	if !errors.As(err, &ae) {
		t.Fatalf("want *auth.Error, got %T", err)
	}
	if ae.Status != http.StatusUnauthorized || ae.Body == "" {
		t.Errorf("error = %+v", ae)
	}
	if store.token != "" || auth.IsAuthenticated(store) {
		t.Error("token persisted after failed login")
	}
}

type noTokenBackend struct{}

func (noTokenBackend) Login(context.Context, backend.Credentials) (backend.LoginResponse, error) {
	return backend.LoginResponse{Fields: map[string]any{"message": "ok"}}, nil
}

func TestLoginWithoutTokenFails(t *testing.T) {
	svc := auth.NewService(noTokenBackend{}, nil)
	store := &memStore{}

	if _, err := svc.Login(context.Background(), store, "a@b.c", "x"); !errors.Is(err, auth.ErrMissingToken) {
		t.Fatalf("want ErrMissingToken, got %v", err)
	}
	if store.token != "" {
		t.Error("token persisted")
	}
}

func TestLogoutAlwaysClears(t *testing.T) {
	svc, _ := newService(t)

	tests := []struct {
		name  string
		token string
	}{
		{"with token", "tok"},
		{"without token", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memStore{token: tt.token}
			if err := svc.Logout(store); err != nil {
				t.Fatalf("logout: %v", err)
			}
			if store.deletes != 1 || auth.IsAuthenticated(store) {
				t.Errorf("deletes=%d authenticated=%v", store.deletes, auth.IsAuthenticated(store))
			}
		})
	}
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", auth.TokenKey)
	store := auth.NewFileStore(path)

	if tok, err := store.Get(); err != nil || tok != "" {
		t.Fatalf("missing file: tok=%q err=%v", tok, err)
	}
	if err := store.Set("abc"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if tok, _ := store.Get(); tok != "abc" {
		t.Errorf("get = %q", tok)
	}
	if err := store.Delete(); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Delete(); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if auth.IsAuthenticated(store) {
		t.Error("still authenticated")
	}
}
