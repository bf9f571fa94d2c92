package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/http/flash"
	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/http/middleware"
	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/http/render"
	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/http/validation"
	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/modules/auth"
	"github.com/gabrielcoffee/mba-fullstack-frontend/pkg/view"
	"github.com/gabrielcoffee/mba-fullstack-frontend/templates/pages"
)

const (
	loginPath    = "/login"
	productsPath = "/produtos"

	msgInvalidLogin = "E-mail ou senha inválidos"
)

type AuthHandlers struct {
	auth  *auth.Service
	flash *flash.Codec
	log   *slog.Logger
}

func NewAuthHandlers(svc *auth.Service, flashCodec *flash.Codec, l *slog.Logger) *AuthHandlers {
	return &AuthHandlers{auth: svc, flash: flashCodec, log: l}
}

type loginInput struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// LoginGet renders the login form. Signed-in users never reach it; the
// router puts RedirectIfAuthenticated in front.
func (h *AuthHandlers) LoginGet(c *gin.Context) {
	render.Component(c, http.StatusOK, pages.Login(pages.LoginVM{
		Base:     render.Base(c),
		ReturnTo: normalizeReturnTo(c.Query("return_to")),
	}))
}

func (h *AuthHandlers) LoginPost(c *gin.Context) {
	returnTo := normalizeReturnTo(c.PostForm("return_to"))

	var in loginInput
	if err := c.ShouldBind(&in); err != nil {
		render.Component(c, http.StatusBadRequest, pages.Login(pages.LoginVM{
			Base:     render.Base(c),
			ReturnTo: returnTo,
			Form:     view.LoginForm{Email: in.Email},
			Errors:   validation.FromBindError(err, &in),
			Error:    msgInvalidLogin,
		}))
		return
	}

	_, err := h.auth.Login(c.Request.Context(), middleware.TokenStore(c), in.Email, in.Password)
	if err != nil {
		status := http.StatusUnauthorized
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			logBackendFailure(c, h.log, "login_failed", err)
			status = http.StatusBadGateway
		}
		render.Component(c, status, pages.Login(pages.LoginVM{
			Base:     render.Base(c),
			ReturnTo: returnTo,
			Form:     view.LoginForm{Email: in.Email},
			Error:    msgInvalidLogin,
		}))
		return
	}

	dest := productsPath
	if returnTo != "" {
		dest = returnTo
	}
	c.Redirect(http.StatusFound, dest)
}

// LogoutPost drops the stored token whatever its state and returns to login.
func (h *AuthHandlers) LogoutPost(c *gin.Context) {
	if err := h.auth.Logout(middleware.TokenStore(c)); err != nil {
		h.log.LogAttrs(c.Request.Context(), slog.LevelWarn, "logout_clear_failed",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.Any("err", err),
		)
	}
	render.RedirectWithFlash(c, h.flash, loginPath, view.FlashInfo, "Você saiu da sua conta.")
}
