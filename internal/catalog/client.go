package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/repo"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxResponseBytes = 4 << 20

type Config struct {
	BaseURL string
	Timeout time.Duration

	// BreakerFailures consecutive unavailable responses open the breaker for BreakerTimeout.
	// Zero disables the breaker.
	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

// Client reads products and categories from the remote catalog API. It implements
// repo.ProductRepository.
type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
}

func NewClient(cfg Config) *Client {
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}

	if cfg.BreakerFailures > 0 {
		c.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
			Name:        "catalog",
			MaxRequests: 1,
			Timeout:     cfg.BreakerTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= cfg.BreakerFailures
			},
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, repo.ErrProductNotFound) || errors.Is(err, context.Canceled)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.Printf("circuit breaker %s: %s -> %s", name, from, to)
			},
		})
	}
	return c
}

// GetAll fetches GET /products.
func (c *Client) GetAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.getJSON(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return nonNil(products), nil
}

// GetByID fetches GET /products/{id}. The upstream answers unknown IDs with an empty body, which
// is reported as repo.ErrProductNotFound just like a 404.
func (c *Client) GetByID(ctx context.Context, id int) (models.Product, error) {
	var product *models.Product
	if err := c.getJSON(ctx, "/products/"+strconv.Itoa(id), &product); err != nil {
		return models.Product{}, err
	}
	if product == nil || product.ID == 0 {
		return models.Product{}, repo.ErrProductNotFound
	}
	return *product, nil
}

// GetByCategory fetches GET /products/category/{category}.
func (c *Client) GetByCategory(ctx context.Context, category string) ([]models.Product, error) {
	var products []models.Product
	if err := c.getJSON(ctx, "/products/category/"+url.PathEscape(category), &products); err != nil {
		return nil, err
	}
	return nonNil(products), nil
}

// GetCategories fetches GET /products/categories.
func (c *Client) GetCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.getJSON(ctx, "/products/categories", &categories); err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	body, err := c.fetch(ctx, path)
	if err != nil {
		return err
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		body = []byte("null")
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(repo.ErrCatalogUnavailable, "decode %s: %v", path, err)
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, path string) ([]byte, error) {
	if c.breaker == nil {
		return c.do(ctx, path)
	}

	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.do(ctx, path)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, errors.Wrapf(repo.ErrCatalogUnavailable, "GET %s: %v", path, err)
	}
	return body, err
}

func (c *Client) do(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil, errors.Wrapf(ctx.Err(), "GET %s", path)
		}
		return nil, errors.Wrapf(repo.ErrCatalogUnavailable, "GET %s: %v", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.Wrapf(repo.ErrProductNotFound, "GET %s", path)
	case resp.StatusCode != http.StatusOK:
		return nil, errors.Wrapf(repo.ErrCatalogUnavailable, "GET %s: status %d", path, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrapf(repo.ErrCatalogUnavailable, "GET %s: read body: %v", path, err)
	}
	return body, nil
}

func nonNil(products []models.Product) []models.Product {
	if products == nil {
		return []models.Product{}
	}
	return products
}
