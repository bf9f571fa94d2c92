package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/backend"
	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/http/middleware"
	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/http/render"
	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/http/validation"
	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/modules/auth"
	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/modules/products"
	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/shared/apperr"
	"github.com/gabrielcoffee/mba-fullstack-frontend/pkg/view"
	"github.com/gabrielcoffee/mba-fullstack-frontend/templates/pages"
	"github.com/gabrielcoffee/mba-fullstack-frontend/templates/shared"
)

const (
	msgListFailed   = "Erro ao carregar produtos. Tente novamente."
	msgCreateFailed = "Erro ao cadastrar produto. Tente novamente."
)

// ProductsOptions carries the view timings and limits from config.
type ProductsOptions struct {
	TooltipDelay   time.Duration
	RedirectDelay  time.Duration
	MaxUploadBytes int64
}

type ProductsHandler struct {
	svc     *products.Service
	resolve func(string) string
	opts    ProductsOptions
	log     *slog.Logger
}

// NewProductsHandler wires the product views. resolve turns a stored
// imageUrl into something the browser can load.
func NewProductsHandler(svc *products.Service, resolve func(string) string, opts ProductsOptions, l *slog.Logger) *ProductsHandler {
	if resolve == nil {
		resolve = func(s string) string { return s }
	}
	return &ProductsHandler{svc: svc, resolve: resolve, opts: opts, log: l}
}

// List fetches the collection once per request and renders one of the
// error, empty or grid states.
func (h *ProductsHandler) List(c *gin.Context) {
	vm := pages.ProductsIndexVM{
		Base:           render.Base(c),
		TooltipDelayMS: h.opts.TooltipDelay.Milliseconds(),
	}

	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		logBackendFailure(c, h.log, "products_list_failed", err)
		vm.Error = msgListFailed
		render.Component(c, apperr.HTTPStatus(apperr.FromBackend(err, msgListFailed)), pages.ProductsIndex(vm))
		return
	}

	vm.Products = mapProductCards(items, h.resolve)
	render.Component(c, http.StatusOK, pages.ProductsIndex(vm))
}

func mapProductCards(items []backend.Product, resolve func(string) string) []view.ProductCard {
	out := make([]view.ProductCard, 0, len(items))
	for _, p := range items {
		img := view.PlaceholderNoImage
		if p.ImageURL != "" {
			img = resolve(p.ImageURL)
		}
		out = append(out, view.ProductCard{
			ID:          string(p.ID),
			Title:       p.Title,
			Category:    p.Category,
			Price:       shared.FormatMoney("BRL", p.Price),
			Description: p.Description,
			Status:      p.Status,
			ImageURL:    img,
			FallbackURL: view.PlaceholderBroken,
		})
	}
	return out
}

func (h *ProductsHandler) New(c *gin.Context) {
	render.Component(c, http.StatusOK, pages.ProductsNew(pages.ProductsNewVM{
		Base: render.Base(c),
	}))
}

type createProductInput struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
	Category    string `form:"category" binding:"required"`
	Price       string `form:"price" binding:"required"`
}

// Create runs upload-then-create for one submit. Any failure re-renders
// the draft with a single generic message.
func (h *ProductsHandler) Create(c *gin.Context) {
	if h.opts.MaxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.opts.MaxUploadBytes)
	}

	var in createProductInput
	if err := c.ShouldBind(&in); err != nil {
		render.Component(c, http.StatusBadRequest, pages.ProductsNew(pages.ProductsNewVM{
			Base:   render.Base(c),
			Form:   productForm(in),
			Errors: validation.FromBindError(err, &in),
			Error:  msgCreateFailed,
		}))
		return
	}

	draft := products.Draft{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
	}

	fh, err := c.FormFile("image")
	switch {
	case err == nil && fh.Size > 0:
		file, err := fh.Open()
		if err != nil {
			h.createFailed(c, in, fmt.Errorf("open upload: %w", err))
			return
		}
		defer file.Close()
		draft.Image = &products.Image{
			Filename:    fh.Filename,
			ContentType: contentType(fh),
			Body:        file,
		}
	case err != nil && !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart):
		h.createFailed(c, in, fmt.Errorf("read upload: %w", err))
		return
	}

	token := auth.Token(middleware.TokenStore(c))
	created, err := h.svc.Create(c.Request.Context(), token, draft)
	if err != nil {
		h.createFailed(c, in, err)
		return
	}

	h.log.LogAttrs(c.Request.Context(), slog.LevelInfo, "product_created",
		slog.String("request_id", middleware.GetRequestID(c)),
		slog.String("product_id", string(created.ID)),
		slog.Bool("with_image", draft.Image != nil),
	)

	render.Component(c, http.StatusCreated, pages.ProductsNew(pages.ProductsNewVM{
		Base:           render.Base(c),
		Success:        true,
		RefreshContent: refreshContent(h.opts.RedirectDelay, productsPath),
	}))
}

func (h *ProductsHandler) createFailed(c *gin.Context, in createProductInput, err error) {
	logBackendFailure(c, h.log, "product_create_failed", err)
	render.Component(c, apperr.HTTPStatus(apperr.FromBackend(err, msgCreateFailed)), pages.ProductsNew(pages.ProductsNewVM{
		Base:  render.Base(c),
		Form:  productForm(in),
		Error: msgCreateFailed,
	}))
}

// refreshContent builds a meta refresh value. The header only takes whole
// seconds, so partial seconds round up.
func refreshContent(delay time.Duration, target string) string {
	secs := int(math.Ceil(delay.Seconds()))
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%d;url=%s", secs, target)
}

func productForm(in createProductInput) view.ProductForm {
	return view.ProductForm{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
	}
}

func contentType(fh *multipart.FileHeader) string {
	if ct := fh.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
