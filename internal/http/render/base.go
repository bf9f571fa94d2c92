package render

import (
	"github.com/gin-gonic/gin"

	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/http/middleware"
	"github.com/gabrielcoffee/mba-fullstack-frontend/templates/pages"
)

// Base fills the layout fields every page shares.
func Base(c *gin.Context) pages.Base {
	return pages.Base{
		Flash:      middleware.GetFlash(c),
		ShowLogout: middleware.IsAuthenticated(c),
	}
}
