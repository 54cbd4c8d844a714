package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rogerio-castellano/storefront/internal/cart"
	"github.com/rogerio-castellano/storefront/internal/checkout"
	"github.com/rogerio-castellano/storefront/internal/http/handlers"
	mw "github.com/rogerio-castellano/storefront/internal/http/middleware"
	rl "github.com/rogerio-castellano/storefront/internal/http/rate_limiter"
	"github.com/rogerio-castellano/storefront/internal/http/router"
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/notify"
	"github.com/rogerio-castellano/storefront/internal/repo"
	"github.com/rogerio-castellano/storefront/internal/session"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var testProducts = []models.Product{
	{ID: 1, Title: "Fjallraven Backpack", Price: decimal.RequireFromString("109.95"), Description: "Fits 15 inch laptops", Category: "men's clothing", Rating: models.Rating{Rate: 3.9, Count: 120}},
	{ID: 2, Title: "Gold Ring", Price: decimal.RequireFromString("100.00"), Description: "18k", Category: "jewelery"},
	{ID: 3, Title: "Rain Jacket", Price: decimal.RequireFromString("39.99"), Description: "Lightweight", Category: "women's clothing"},
}

type testEnv struct {
	handler http.Handler
	orders  *repo.InMemoryOrderRepository
	carts   *repo.InMemoryCartRepository
	issuer  *session.Issuer
}

func setupRouter(t *testing.T, products repo.ProductRepository) *testEnv {
	t.Helper()
	if products == nil {
		products = repo.NewInMemoryProductRepository(testProducts...)
	}

	orders := repo.NewInMemoryOrderRepository()
	carts := repo.NewInMemoryCartRepository()
	srv := handlers.NewServer(
		products,
		cart.NewSessions(carts),
		checkout.NewService(orders, notify.NopNotifier{}, 0),
		orders,
	)

	issuer, err := session.NewIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	return &testEnv{
		handler: router.NewRouter(srv, issuer, rl.New(1000, 1000, time.Minute)),
		orders:  orders,
		carts:   carts,
		issuer:  issuer,
	}
}

// do sends the request with the given session token (if any) and returns the recorder.
func (e *testEnv) do(method, target, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(mw.SessionHeader, token)
	}

	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, req)
	return w
}

// newSession opens a session and returns its token.
func (e *testEnv) newSession(t *testing.T) string {
	t.Helper()
	w := e.do(http.MethodGet, "/cart", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	token := w.Header().Get(mw.SessionHeader)
	require.NotEmpty(t, token)
	return token
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v))
	return v
}

func validCustomer() handlers.CheckoutRequest {
	return handlers.CheckoutRequest{
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Address:   "12 St James's Square",
		City:      "London",
		ZipCode:   "SW1Y 4JH",
	}
}

// unavailableCatalog fails every lookup the way an unreachable upstream does.
type unavailableCatalog struct{}

func (unavailableCatalog) GetAll(context.Context) ([]models.Product, error) {
	return nil, repo.ErrCatalogUnavailable
}

func (unavailableCatalog) GetByID(context.Context, int) (models.Product, error) {
	return models.Product{}, repo.ErrCatalogUnavailable
}

func (unavailableCatalog) GetByCategory(context.Context, string) ([]models.Product, error) {
	return nil, repo.ErrCatalogUnavailable
}

func (unavailableCatalog) GetCategories(context.Context) ([]string, error) {
	return nil, repo.ErrCatalogUnavailable
}
