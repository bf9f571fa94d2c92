package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"
)

// ID accepts both numeric and string identifiers from the backend.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	if string(b) == "null" {
		*id = ""
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("product id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

type Product struct {
	ID          ID      `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Status      string  `json:"status"`
}

// NewProduct is the body accepted by POST /products.
type NewProduct struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Status      string  `json:"status"`
}

// ListProducts fetches the full product collection.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var out []Product
	err := c.do(ctx, request{
		op:     "list products",
		method: http.MethodGet,
		path:   "/products",
	}, &out)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []Product{}
	}
	return out, nil
}

// CreateProduct posts a product record with the bearer token attached.
func (c *Client) CreateProduct(ctx context.Context, token string, p NewProduct) (Product, error) {
	body, err := jsonBody(p)
	if err != nil {
		return Product{}, err
	}
	var out Product
	err = c.do(ctx, request{
		op:          "create product",
		method:      http.MethodPost,
		path:        "/products",
		body:        body,
		contentType: "application/json",
		token:       token,
	}, &out)
	return out, err
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// UploadImage sends the file as multipart field "image" and returns the
// imageUrl the backend assigned to it.
func (c *Client) UploadImage(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, quoteEscaper.Replace(filename)))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("upload image: failed to read file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}

	var out struct {
		ImageURL string `json:"imageUrl"`
	}
	err = c.do(ctx, request{
		op:          "upload image",
		method:      http.MethodPost,
		path:        "/products/upload",
		body:        &buf,
		contentType: mw.FormDataContentType(),
	}, &out)
	if err != nil {
		return "", err
	}
	return out.ImageURL, nil
}
