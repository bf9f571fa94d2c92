package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/http/flash"
	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/shared/apperr"
	"github.com/gabrielcoffee/mba-fullstack-frontend/pkg/view"
)

const (
	loginPath        = "/login"
	msgLoginRequired = "Faça login para continuar."
)

// RequireAuth lets the request through only when a token is stored.
// Page requests are sent to the login screen with a return_to pointing
// back here; JSON callers get a 401.
func RequireAuth(flashCodec *flash.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if IsAuthenticated(c) {
			c.Next()
			return
		}

		if WantsJSON(c) {
			Fail(c, apperr.UnauthorizedErr(msgLoginRequired))
			return
		}

		SetFlashCookie(c, flashCodec, view.Flash{
			Kind:    view.FlashWarning,
			Message: msgLoginRequired,
		})
		c.Redirect(http.StatusFound, loginPath+"?return_to="+url.QueryEscape(c.Request.URL.RequestURI()))
		c.Abort()
	}
}

// RedirectIfAuthenticated keeps signed-in users off guest-only pages.
func RedirectIfAuthenticated(dest string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if IsAuthenticated(c) {
			c.Redirect(http.StatusFound, dest)
			c.Abort()
			return
		}
		c.Next()
	}
}
