package products

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/backend"
)

// StatusActive is the status every product is created with.
const StatusActive = "active"

var ErrUpload = errors.New("products: image upload failed")

// Backend is the subset of the REST client the product flows need.
type Backend interface {
	ListProducts(ctx context.Context) ([]backend.Product, error)
	UploadImage(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
	CreateProduct(ctx context.Context, token string, p backend.NewProduct) (backend.Product, error)
}

// Image is a file selected on the creation form.
type Image struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// Draft mirrors the creation form for the duration of one submit.
type Draft struct {
	Title       string
	Description string
	Category    string
	Price       string
	Image       *Image
}

type Service struct {
	api Backend
}

func NewService(api Backend) *Service {
	return &Service{api: api}
}

// List returns the whole product collection.
func (s *Service) List(ctx context.Context) ([]backend.Product, error) {
	items, err := s.api.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("products: list: %w", err)
	}
	return items, nil
}

// Create uploads the draft image (when present) and then posts the product.
// A failed upload stops the flow before the create request is sent.
func (s *Service) Create(ctx context.Context, token string, d Draft) (backend.Product, error) {
	imageURL := ""
	if d.Image != nil {
		u, err := s.api.UploadImage(ctx, d.Image.Filename, d.Image.ContentType, d.Image.Body)
		if err != nil {
			return backend.Product{}, fmt.Errorf("%w: %w", ErrUpload, err)
		}
		imageURL = u
	}

	created, err := s.api.CreateProduct(ctx, token, Payload(d, imageURL))
	if err != nil {
		return backend.Product{}, fmt.Errorf("products: create: %w", err)
	}
	return created, nil
}

// Payload assembles the create body from a draft and the uploaded image URL.
func Payload(d Draft, imageURL string) backend.NewProduct {
	return backend.NewProduct{
		Title:       d.Title,
		Description: d.Description,
		Category:    d.Category,
		Price:       ParsePrice(d.Price),
		ImageURL:    imageURL,
		Status:      StatusActive,
	}
}

var pricePrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParsePrice reads the longest leading decimal number of the price input,
// so "12abc" is 12 and "12.5.3" is 12.5. Anything without such a prefix,
// or that overflows to a non-finite value, is 0.
func ParsePrice(raw string) float64 {
	num := pricePrefix.FindString(strings.TrimLeftFunc(raw, unicode.IsSpace))
	if num == "" {
		return 0
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v == 0 {
		return 0
	}
	return v
}
