package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/backend"
)

// TokenKey is the fixed key the session token is persisted under.
const TokenKey = "authToken"

var (
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	ErrMissingToken       = errors.New("auth: login response carries no token")
)

// TokenStore persists the backend session token for one client.
type TokenStore interface {
	Get() (string, error)
	Set(token string) error
	Delete() error
}

// Backend is the subset of the REST client the auth flow needs.
type Backend interface {
	Login(ctx context.Context, creds backend.Credentials) (backend.LoginResponse, error)
}

// Error is returned when the backend rejects a login with a non-2xx status.
type Error struct {
	Status int
	Body   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("auth: login rejected: %d - %s", e.Status, e.Body)
}

func (e *Error) Is(target error) bool { return target == ErrInvalidCredentials }

type Service struct {
	api Backend
	log *slog.Logger
}

func NewService(api Backend, l *slog.Logger) *Service {
	if l == nil {
		l = slog.Default()
	}
	return &Service{api: api, log: l}
}

// Login authenticates against the backend and persists the issued token.
// Nothing is persisted when the call fails.
func (s *Service) Login(ctx context.Context, store TokenStore, email, password string) (backend.LoginResponse, error) {
	email = strings.TrimSpace(email)

	resp, err := s.api.Login(ctx, backend.Credentials{Email: email, Password: password})
	if err != nil {
		var he *backend.HTTPError
		if errors.As(err, &he) {
			s.log.LogAttrs(ctx, slog.LevelWarn, "login_rejected",
				slog.Int("status", he.Status),
				slog.String("body", he.Body),
			)
			return backend.LoginResponse{}, &Error{Status: he.Status, Body: he.Body}
		}
		s.log.LogAttrs(ctx, slog.LevelError, "login_failed", slog.Any("err", err))
		return backend.LoginResponse{}, err
	}
	if resp.Token == "" {
		return backend.LoginResponse{}, ErrMissingToken
	}

	if err := store.Set(resp.Token); err != nil {
		return backend.LoginResponse{}, fmt.Errorf("auth: persist token: %w", err)
	}
	return resp, nil
}

// Logout removes the persisted token regardless of prior state.
func (s *Service) Logout(store TokenStore) error {
	if err := store.Delete(); err != nil {
		return fmt.Errorf("auth: delete token: %w", err)
	}
	return nil
}

// Token returns the persisted token, or "" when none can be read.
func Token(store TokenStore) string {
	if store == nil {
		return ""
	}
	tok, err := store.Get()
	if err != nil {
		return ""
	}
	return tok
}

// IsAuthenticated reports whether a token is persisted. The token itself is
// never inspected.
func IsAuthenticated(store TokenStore) bool {
	return Token(store) != ""
}
