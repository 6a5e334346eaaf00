package fakestore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Product is the catalog's product payload.
type Product struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      Rating  `json:"rating"`
}

// Rating is the catalog's rating summary for a product.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Client is the HTTP client for the external product catalog.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a catalog client against the given base URL.
func NewClient(baseURL string) *Client {
	return NewClientWithHTTPClient(baseURL, nil)
}

// NewClientWithHTTPClient allows overriding the HTTP client (used for tests).
func NewClientWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// GetProduct fetches one product by id.
func (c *Client) GetProduct(ctx context.Context, productID int64) (*Product, error) {
	endpoint := fmt.Sprintf("%s/products/%d", c.baseURL, productID)

	out := &Product{}
	if err := c.doJSON(ctx, http.MethodGet, endpoint, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, method, endpoint string, out interface{}) error {
	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("catalog api returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return err
	}

	return nil
}
