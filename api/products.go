package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/gebeyahub/gebeya-go/core"
)

// CreateProductRequest adds a catalog entry for the current supplier.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Unit        string  `json:"unit,omitempty"`
	Stock       int     `json:"stock,omitempty"`
}

// UploadResult reports where an uploaded file landed.
type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename,omitempty"`
	Size     int64  `json:"size,omitempty"`
}

// ListProducts returns catalog entries, optionally narrowed by category.
func (c *Client) ListProducts(ctx context.Context, category string) ([]core.Product, error) {
	endpoint := "/api/products" + queryValues(func(v url.Values) {
		if category != "" {
			v.Set("category", category)
		}
	})
	var out []core.Product
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProduct fetches one product by id.
func (c *Client) GetProduct(ctx context.Context, id int) (*core.Product, error) {
	out := &core.Product{}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateProduct adds a catalog entry.
func (c *Client) CreateProduct(ctx context.Context, req CreateProductRequest) (*core.Product, error) {
	out := &core.Product{}
	if err := c.do(ctx, http.MethodPost, "/api/products", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// UploadProductImage attaches an image to a product. The request is a
// multipart form with a single "file" field; no JSON content type is set.
func (c *Client) UploadProductImage(ctx context.Context, productID int, filename string, file io.Reader) (*UploadResult, error) {
	out := &UploadResult{}
	endpoint := fmt.Sprintf("/api/products/%d/image", productID)
	if err := c.upload(ctx, endpoint, filename, file, out); err != nil {
		return nil, err
	}
	return out, nil
}
