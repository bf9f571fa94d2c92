// Package session persists the backend session token for browser clients.
package session

import (
	"crypto/sha256"
	"io"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/hkdf"

	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/modules/auth"
)

const CookieName = "storefront_session"

// Store keeps one token per browser, addressed through the request.
type Store interface {
	Load(c *gin.Context) (string, error)
	Save(c *gin.Context, token string) error
	Clear(c *gin.Context) error
}

// Bind adapts a Store to auth.TokenStore for the lifetime of one request.
func Bind(s Store, c *gin.Context) auth.TokenStore {
	return &requestStore{s: s, c: c}
}

type requestStore struct {
	s Store
	c *gin.Context
}

func (r *requestStore) Get() (string, error)   { return r.s.Load(r.c) }
func (r *requestStore) Set(token string) error { return r.s.Save(r.c, token) }
func (r *requestStore) Delete() error          { return r.s.Clear(r.c) }

// DeriveKey expands the configured secret into a 32-byte key dedicated to
// one purpose, so cookie signing, encryption and flash never share a key.
func DeriveKey(secret []byte, purpose string) []byte {
	key := make([]byte, 32)
	r := hkdf.New(sha256.New, secret, nil, []byte("storefront "+purpose))
	if _, err := io.ReadFull(r, key); err != nil {
		panic("session: hkdf: " + err.Error())
	}
	return key
}
