package middleware

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/shared/apperr"
	"github.com/gabrielcoffee/mba-fullstack-frontend/templates/pages"
)

// WantsJSON reports whether the caller asked for a JSON answer instead of a page.
func WantsJSON(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}

// Fail records err for ErrorHandler and stops the chain.
func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ErrorHandler turns the last recorded error into a response when the
// handler did not write one itself.
func ErrorHandler(l *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := apperr.HTTPStatus(err)
		publicMsg := apperr.PublicMessage(err)
		rid := GetRequestID(c)

		l.LogAttrs(c.Request.Context(), slog.LevelError, "request_failed",
			slog.String("request_id", rid),
			slog.Int("status", status),
			slog.String("kind", string(apperr.KindOf(err))),
			slog.Any("err", err),
		)

		if WantsJSON(c) {
			c.AbortWithStatusJSON(status, gin.H{
				"error":      publicMsg,
				"request_id": rid,
			})
			return
		}

		c.Abort()
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.Status(status)
		page := pages.Error(pages.ErrorVM{
			Base:      pages.Base{Flash: GetFlash(c), ShowLogout: IsAuthenticated(c)},
			Status:    status,
			Message:   publicMsg,
			RequestID: rid,
		})
		if err := page.Render(c.Request.Context(), c.Writer); err != nil {
			l.Error("error_page_render_failed", slog.String("request_id", rid), slog.Any("err", err))
		}
	}
}
