package handlers

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/backend"
	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/http/middleware"
	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/shared/apperr"
)

// normalizeReturnTo keeps only same-site relative paths, so a crafted
// return_to cannot bounce the user to another host.
func normalizeReturnTo(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || s[0] != '/' {
		return ""
	}
	if strings.HasPrefix(s, "//") || strings.HasPrefix(s, `/\`) {
		return ""
	}
	if strings.Contains(s, "://") {
		return ""
	}
	return s
}

// logBackendFailure records why a backend call failed. Views only ever show
// their fixed message.
func logBackendFailure(c *gin.Context, l *slog.Logger, msg string, err error) {
	l.LogAttrs(c.Request.Context(), slog.LevelError, msg,
		slog.String("request_id", middleware.GetRequestID(c)),
		slog.String("kind", string(apperr.KindOf(err))),
		slog.Int("backend_status", backend.StatusOf(err)),
		slog.Any("err", err),
	)
}
