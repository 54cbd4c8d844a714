package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rogerio-castellano/storefront/internal/checkout"
	"github.com/rogerio-castellano/storefront/internal/models"
	repo "github.com/rogerio-castellano/storefront/internal/repo"
	"github.com/rogerio-castellano/storefront/internal/session"
	log "github.com/sirupsen/logrus"
)

// CheckoutHandler godoc
// @Summary Place an order
// @Description Turns the session cart into an order after a simulated processing delay and empties the cart. No payment is taken.
// @Tags checkout
// @Accept json
// @Produce json
// @Param customer body CheckoutRequest true "Shipping and contact details"
// @Success 201 {object} OrderResponse
// @Failure 400 {array} CustomerValidationError
// @Failure 409 {string} string "Cart is empty"
// @Failure 500 {string} string "Internal error"
// @Router /checkout [post]
func (s *Server) CheckoutHandler(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if validationErrors := validateCustomer(req); len(validationErrors) > 0 {
		respond(w, http.StatusBadRequest, validationErrors)
		return
	}

	store, ok := s.sessionCart(w, r)
	if !ok {
		return
	}

	customer := models.Customer{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		City:      req.City,
		ZipCode:   req.ZipCode,
		Phone:     req.Phone,
		Notes:     req.Notes,
	}
	order, err := s.checkout.PlaceOrder(r.Context(), session.IDFromContext(r.Context()), store, customer)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			http.Error(w, "cart is empty", http.StatusConflict)
			return
		}
		log.Printf("checkout failed: %v", err)
		http.Error(w, "could not place order", http.StatusInternalServerError)
		return
	}

	respond(w, http.StatusCreated, toOrderResponse(order))
}

// GetOrderHandler godoc
// @Summary Get an order placed in this session
// @Tags checkout
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} OrderResponse
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /orders/{id} [get]
func (s *Server) GetOrderHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		http.Error(w, "order not found", http.StatusNotFound)
		return
	}

	order, err := s.orders.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		log.Printf("could not fetch order %s: %v", id, err)
		http.Error(w, "could not fetch order", http.StatusInternalServerError)
		return
	}
	if order.SessionID != session.IDFromContext(r.Context()) {
		http.Error(w, "order not found", http.StatusNotFound)
		return
	}

	respond(w, http.StatusOK, toOrderResponse(order))
}
