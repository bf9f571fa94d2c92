// Package backendtest provides an in-memory stand-in for the storefront
// REST backend, used by tests and by cmd/tools/mockbackend.
package backendtest

import (
	"io"
	"net/http"
	"path"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/backend"
)

// Fake implements the four backend endpoints. Zero value is not usable;
// call New.
type Fake struct {
	mu sync.Mutex

	Email    string
	Password string
	Token    string

	Products []backend.Product

	// Failure switches: when set the endpoint answers 500.
	FailList   bool
	FailUpload bool
	FailCreate bool

	calls      map[string]int
	created    []backend.NewProduct
	uploads    []string
	authHeader string
}

func New() *Fake {
	return &Fake{
		Email:    "admin@example.com",
		Password: "secret",
		Token:    "tok_test_123",
		Products: []backend.Product{},
		calls:    map[string]int{},
	}
}

// Calls returns how many times "METHOD /path" was hit.
func (f *Fake) Calls(route string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[route]
}

// Created returns the create payloads received so far.
func (f *Fake) Created() []backend.NewProduct {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]backend.NewProduct(nil), f.created...)
}

// Uploads returns the file names received on /products/upload.
func (f *Fake) Uploads() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.uploads...)
}

// LastAuthorization returns the Authorization header of the last create.
func (f *Fake) LastAuthorization() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.authHeader
}

// Seed appends products to the collection served by GET /products.
func (f *Fake) Seed(ps ...backend.Product) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Products = append(f.Products, ps...)
}

func (f *Fake) SetFailures(list, upload, create bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.FailList, f.FailUpload, f.FailCreate = list, upload, create
}

func (f *Fake) count(c *gin.Context) {
	f.calls[c.Request.Method+" "+c.FullPath()]++
}

// Handler returns the gin engine serving the fake API.
func (f *Fake) Handler() http.Handler {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/login", f.login)
	r.POST("/products/upload", f.upload)
	r.POST("/products", f.create)
	r.GET("/products", f.list)
	return r
}

func (f *Fake) login(c *gin.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count(c)

	var in backend.Credentials
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if !strings.EqualFold(in.Email, f.Email) || in.Password != f.Password {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciais inválidas"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token": f.Token,
		"user":  gin.H{"email": f.Email},
	})
}

func (f *Fake) upload(c *gin.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count(c)

	if f.FailUpload {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image field required"})
		return
	}
	file, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	_, _ = io.Copy(io.Discard, file)
	_ = file.Close()

	name := path.Base(fh.Filename)
	f.uploads = append(f.uploads, name)
	c.JSON(http.StatusOK, gin.H{"imageUrl": "/uploads/" + name})
}

func (f *Fake) create(c *gin.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count(c)

	f.authHeader = c.GetHeader("Authorization")
	if f.authHeader != "Bearer "+f.Token {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	if f.FailCreate {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	var in backend.NewProduct
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	f.created = append(f.created, in)

	p := backend.Product{
		ID:          backend.ID(strconv.Itoa(len(f.Products) + 1)),
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Status:      in.Status,
	}
	f.Products = append(f.Products, p)
	c.JSON(http.StatusCreated, p)
}

func (f *Fake) list(c *gin.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count(c)

	if f.FailList {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database unavailable"})
		return
	}
	c.JSON(http.StatusOK, f.Products)
}
