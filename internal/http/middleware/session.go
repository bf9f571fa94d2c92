package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/http/session"
	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/modules/auth"
)

const CtxKeyTokens = "auth_tokens"

// SessionMiddleware binds the session store to the request so handlers
// see an auth.TokenStore scoped to the current browser.
func SessionMiddleware(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(CtxKeyTokens, session.Bind(store, c))
		c.Next()
	}
}

// TokenStore returns the request's token store. Outside SessionMiddleware
// it is an empty store that never authenticates.
func TokenStore(c *gin.Context) auth.TokenStore {
	if v, ok := c.Get(CtxKeyTokens); ok {
		if s, ok := v.(auth.TokenStore); ok {
			return s
		}
	}
	return noTokens{}
}

// IsAuthenticated reports whether a token is present. The token is never
// validated here; the backend decides on each call.
func IsAuthenticated(c *gin.Context) bool {
	return auth.IsAuthenticated(TokenStore(c))
}

type noTokens struct{}

func (noTokens) Get() (string, error) { return "", nil }
func (noTokens) Set(string) error     { return nil }
func (noTokens) Delete() error        { return nil }
