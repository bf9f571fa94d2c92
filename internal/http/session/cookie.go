package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/modules/auth"
)

// CookieStore keeps the token inside an encrypted, signed cookie, the
// server-side counterpart of keeping it in browser local storage.
type CookieStore struct {
	store *sessions.CookieStore
	name  string
}

func NewCookieStore(secret []byte, secure bool, maxAge time.Duration) *CookieStore {
	cs := sessions.NewCookieStore(DeriveKey(secret, "cookie hash"), DeriveKey(secret, "cookie block"))
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	cs.MaxAge(cs.Options.MaxAge)
	return &CookieStore{store: cs, name: CookieName}
}

func (s *CookieStore) Load(c *gin.Context) (string, error) {
	// an undecodable cookie (tampered, old keys) reads as "no token"
	sess, err := s.store.Get(c.Request, s.name)
	if sess == nil {
		return "", err
	}
	tok, _ := sess.Values[auth.TokenKey].(string)
	return tok, nil
}

func (s *CookieStore) Save(c *gin.Context, token string) error {
	sess, _ := s.store.Get(c.Request, s.name)
	sess.Values[auth.TokenKey] = token
	return sess.Save(c.Request, c.Writer)
}

func (s *CookieStore) Clear(c *gin.Context) error {
	sess, _ := s.store.Get(c.Request, s.name)
	delete(sess.Values, auth.TokenKey)
	sess.Options.MaxAge = -1
	return sess.Save(c.Request, c.Writer)
}
