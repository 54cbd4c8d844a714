package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/rogerio-castellano/storefront/docs"
	"github.com/rogerio-castellano/storefront/internal/http/handlers"
	mw "github.com/rogerio-castellano/storefront/internal/http/middleware"
	rl "github.com/rogerio-castellano/storefront/internal/http/rate_limiter"
	"github.com/rogerio-castellano/storefront/internal/session"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func NewRouter(srv *handlers.Server, issuer *session.Issuer, limiter *rl.Limiter) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.RequestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", srv.HealthHandler)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Group(func(r chi.Router) {
		r.Use(mw.RateLimitMiddleware(limiter))

		r.Get("/products", srv.GetProductsHandler)
		r.Get("/products/categories", srv.GetCategoriesHandler)
		r.Get("/products/category/{category}", srv.GetProductsByCategoryHandler)
		r.Get("/products/{id}", srv.GetProductByIDHandler)
		r.Get("/metrics/dashboard", srv.GetDashboardMetricsHandler)

		r.Group(func(r chi.Router) {
			r.Use(mw.SessionMiddleware(issuer))

			r.Get("/cart", srv.GetCartHandler)
			r.Delete("/cart", srv.ClearCartHandler)
			r.Post("/cart/items", srv.AddCartItemHandler)
			r.Put("/cart/items/{id}", srv.UpdateCartItemHandler)
			r.Delete("/cart/items/{id}", srv.RemoveCartItemHandler)
			r.Post("/checkout", srv.CheckoutHandler)
			r.Get("/orders/{id}", srv.GetOrderHandler)
		})
	})

	return otelhttp.NewHandler(r, "storefront")
}
