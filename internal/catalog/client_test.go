package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rogerio-castellano/storefront/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productsJSON = `[
  {"id":1,"title":"Blue Shirt","price":20,"description":"Cotton","category":"men's clothing","image":"https://img/1.png","rating":{"rate":4.1,"count":259}},
  {"id":2,"title":"Gold Ring","price":100.5,"description":"18k","category":"jewelery","image":"https://img/2.png","rating":{"rate":3.9,"count":70}}
]`

func newCatalogServer(t *testing.T) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(productsJSON))
	})
	mux.HandleFunc("/products/1", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"id":1,"title":"Blue Shirt","price":20,"description":"Cotton","category":"men's clothing","image":"","rating":{"rate":4.1,"count":259}}`))
	})
	mux.HandleFunc("/products/404", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.NotFound(w, r)
	})
	mux.HandleFunc("/products/500", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	mux.HandleFunc("/products/slow", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		time.Sleep(200 * time.Millisecond)
	})
	mux.HandleFunc("/products/categories", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`["electronics","jewelery","men's clothing","women's clothing"]`))
	})
	mux.HandleFunc("/products/category/", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path != "/products/category/men's clothing" {
			w.Write([]byte(`[]`))
			return
		}
		w.Write([]byte(`[{"id":1,"title":"Blue Shirt","price":20,"category":"men's clothing"}]`))
	})
	// Any other id: the upstream answers 200 with an empty body.
	mux.HandleFunc("/products/", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &hits
}

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(Config{BaseURL: srv.URL + "/", Timeout: 100 * time.Millisecond})
}

func TestClient_GetAll(t *testing.T) {
	srv, _ := newCatalogServer(t)
	c := newTestClient(srv)

	products, err := c.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Blue Shirt", products[0].Title)
	assert.Equal(t, "100.50", products[1].Price.StringFixed(2))
	assert.Equal(t, 259, products[0].Rating.Count)
	assert.InDelta(t, 3.9, products[1].Rating.Rate, 0.0001)
}

func TestClient_GetByID(t *testing.T) {
	srv, _ := newCatalogServer(t)
	c := newTestClient(srv)

	p, err := c.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 1, p.ID)
	assert.Equal(t, "men's clothing", p.Category)
}

func TestClient_GetByID_NotFound(t *testing.T) {
	srv, _ := newCatalogServer(t)
	c := newTestClient(srv)

	_, err := c.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, repo.ErrProductNotFound)

	_, err = c.GetByID(context.Background(), 77)
	assert.ErrorIs(t, err, repo.ErrProductNotFound)
}

func TestClient_Unavailable(t *testing.T) {
	srv, _ := newCatalogServer(t)
	c := newTestClient(srv)

	_, err := c.GetByID(context.Background(), 500)
	assert.ErrorIs(t, err, repo.ErrCatalogUnavailable)

	err = c.getJSON(context.Background(), "/products/slow", &struct{}{})
	assert.ErrorIs(t, err, repo.ErrCatalogUnavailable)
}

func TestClient_ConnectionRefused(t *testing.T) {
	srv, _ := newCatalogServer(t)
	c := newTestClient(srv)
	srv.Close()

	_, err := c.GetAll(context.Background())
	assert.ErrorIs(t, err, repo.ErrCatalogUnavailable)
}

func TestClient_GetCategories(t *testing.T) {
	srv, _ := newCatalogServer(t)
	c := newTestClient(srv)

	categories, err := c.GetCategories(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"electronics", "jewelery", "men's clothing", "women's clothing"}, categories)
}

func TestClient_GetByCategory_EscapesPath(t *testing.T) {
	srv, _ := newCatalogServer(t)
	c := newTestClient(srv)

	products, err := c.GetByCategory(context.Background(), "men's clothing")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 1, products[0].ID)

	products, err = c.GetByCategory(context.Background(), "toys")
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestClient_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	srv, hits := newCatalogServer(t)
	c := NewClient(Config{
		BaseURL:         srv.URL,
		Timeout:         time.Second,
		BreakerFailures: 2,
		BreakerTimeout:  time.Minute,
	})
	ctx := context.Background()

	for range 2 {
		_, err := c.GetByID(ctx, 500)
		assert.ErrorIs(t, err, repo.ErrCatalogUnavailable)
	}
	before := hits.Load()

	_, err := c.GetByID(ctx, 1)

	assert.ErrorIs(t, err, repo.ErrCatalogUnavailable)
	assert.Equal(t, before, hits.Load(), "open breaker must not reach the upstream")
}

func TestClient_NotFoundDoesNotTripBreaker(t *testing.T) {
	srv, _ := newCatalogServer(t)
	c := NewClient(Config{
		BaseURL:         srv.URL,
		Timeout:         time.Second,
		BreakerFailures: 1,
		BreakerTimeout:  time.Minute,
	})
	ctx := context.Background()

	for range 3 {
		_, err := c.GetByID(ctx, 404)
		assert.ErrorIs(t, err, repo.ErrProductNotFound)
	}

	p, err := c.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, p.ID)
}

func TestClient_CancelledRequestDoesNotTripBreaker(t *testing.T) {
	srv, _ := newCatalogServer(t)
	c := NewClient(Config{
		BaseURL:         srv.URL,
		Timeout:         time.Second,
		BreakerFailures: 1,
		BreakerTimeout:  time.Minute,
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	err := c.getJSON(ctx, "/products/slow", &struct{}{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, repo.ErrCatalogUnavailable)

	p, err := c.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, p.ID)
}
