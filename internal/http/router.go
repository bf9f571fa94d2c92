// Package http assembles the storefront web frontend: middleware chain,
// routes and the services behind them.
package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/backend"
	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/config"
	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/http/flash"
	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/http/handlers"
	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/http/middleware"
	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/http/session"
	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/modules/auth"
	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/modules/products"
)

const FlashCookieName = "storefront_flash"

// Deps is everything the router needs; NewApp builds it from Config.
type Deps struct {
	Config   config.Config
	Auth     *auth.Service
	Products *products.Service
	Sessions session.Store
	// ResolveImage turns stored imageUrl values into browser URLs.
	ResolveImage func(string) string
}

func NewRouter(l *slog.Logger, d Deps) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = false

	flashCodec := flash.NewCodec(
		session.DeriveKey([]byte(d.Config.SessionSecret), "flash"),
		FlashCookieName,
		d.Config.CookieSecure,
	)

	r.Use(
		middleware.RequestID(),
		middleware.Logger(l),
		middleware.ErrorHandler(l),
		middleware.Recovery(l),
		middleware.FlashMiddleware(flashCodec),
		middleware.SessionMiddleware(d.Sessions),
	)

	authH := handlers.NewAuthHandlers(d.Auth, flashCodec, l)
	productsH := handlers.NewProductsHandler(d.Products, d.ResolveImage, handlers.ProductsOptions{
		TooltipDelay:   d.Config.TooltipDelay,
		RedirectDelay:  d.Config.RedirectDelay,
		MaxUploadBytes: d.Config.MaxUploadBytes(),
	}, l)

	r.GET("/healthz", handlers.Health)
	r.GET("/", handlers.Landing)

	guest := r.Group("/", middleware.RedirectIfAuthenticated("/produtos"))
	guest.GET("/login", authH.LoginGet)
	guest.POST("/login", authH.LoginPost)

	r.POST("/logout", authH.LogoutPost)

	protected := r.Group("/produtos", middleware.RequireAuth(flashCodec))
	protected.GET("", productsH.List)
	protected.GET("/cadastro", productsH.New)
	protected.POST("/cadastro", productsH.Create)

	r.NoRoute(handlers.NotFound)

	return r
}

// NewApp builds the backend client, services and session store from cfg
// and returns the ready router.
func NewApp(l *slog.Logger, cfg config.Config) (*gin.Engine, error) {
	sessions, err := session.FromConfig(cfg)
	if err != nil {
		return nil, err
	}

	api := backend.NewClient(cfg.BackendBaseURL, cfg.BackendTimeout)
	return NewRouter(l, Deps{
		Config:       cfg,
		Auth:         auth.NewService(api, l),
		Products:     products.NewService(api),
		Sessions:     sessions,
		ResolveImage: api.ResolveURL,
	}), nil
}
