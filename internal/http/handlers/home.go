package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/http/middleware"
	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/shared/apperr"
)

var notFound = apperr.NotFoundErr("Página não encontrada.")

// Landing sends signed-in users to their products and everyone else to login.
func Landing(c *gin.Context) {
	if middleware.IsAuthenticated(c) {
		c.Redirect(http.StatusFound, productsPath)
		return
	}
	c.Redirect(http.StatusFound, loginPath)
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// NotFound renders the error page for unknown routes.
func NotFound(c *gin.Context) {
	middleware.Fail(c, notFound)
}
