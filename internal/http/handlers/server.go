package handlers

import (
	"github.com/rogerio-castellano/storefront/internal/cart"
	"github.com/rogerio-castellano/storefront/internal/checkout"
	repo "github.com/rogerio-castellano/storefront/internal/repo"
)

// Server holds the dependencies of the HTTP handlers.
type Server struct {
	products repo.ProductRepository
	carts    *cart.Sessions
	checkout *checkout.Service
	orders   repo.OrderRepository
}

func NewServer(products repo.ProductRepository, carts *cart.Sessions, checkout *checkout.Service, orders repo.OrderRepository) *Server {
	return &Server{
		products: products,
		carts:    carts,
		checkout: checkout,
		orders:   orders,
	}
}
