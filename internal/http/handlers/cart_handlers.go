package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/storefront/internal/cart"
	"github.com/rogerio-castellano/storefront/internal/session"
	log "github.com/sirupsen/logrus"
)

func (s *Server) sessionCart(w http.ResponseWriter, r *http.Request) (*cart.Store, bool) {
	sessionID := session.IDFromContext(r.Context())
	if sessionID == "" {
		http.Error(w, "missing session", http.StatusUnauthorized)
		return nil, false
	}

	store, err := s.carts.Get(r.Context(), sessionID)
	if err != nil {
		log.WithField("session_id", sessionID).Printf("could not load cart: %v", err)
		http.Error(w, "could not load cart", http.StatusInternalServerError)
		return nil, false
	}
	return store, true
}

func writeCart(w http.ResponseWriter, store *cart.Store) {
	items, count, total := store.Summary()
	respond(w, http.StatusOK, CartResponse{
		Items:     toCartItemResponses(items),
		ItemCount: count,
		Total:     total.StringFixed(2),
	})
}

func productIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// GetCartHandler godoc
// @Summary Get the session cart
// @Tags cart
// @Produce json
// @Success 200 {object} CartResponse
// @Router /cart [get]
func (s *Server) GetCartHandler(w http.ResponseWriter, r *http.Request) {
	store, ok := s.sessionCart(w, r)
	if !ok {
		return
	}
	writeCart(w, store)
}

// AddCartItemHandler godoc
// @Summary Add a product to the cart
// @Description Adds quantity units (default 1) of the product, merging with an existing line.
// @Tags cart
// @Accept json
// @Produce json
// @Param item body AddItemRequest true "Product and quantity"
// @Success 200 {object} CartResponse
// @Failure 400 {string} string "Invalid input or quantity above the limit"
// @Failure 404 {string} string "Product not found"
// @Failure 503 {string} string "Catalog unavailable"
// @Router /cart/items [post]
func (s *Server) AddCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if req.ProductID <= 0 || quantity <= 0 {
		http.Error(w, "product_id and quantity must be positive", http.StatusBadRequest)
		return
	}
	if quantity > cart.MaxQuantity {
		http.Error(w, fmt.Sprintf("quantity cannot exceed %d", cart.MaxQuantity), http.StatusBadRequest)
		return
	}

	store, ok := s.sessionCart(w, r)
	if !ok {
		return
	}

	product, err := s.products.GetByID(r.Context(), req.ProductID)
	if err != nil {
		catalogError(w, err)
		return
	}

	store.AddItems(product, quantity)
	writeCart(w, store)
}

// UpdateCartItemHandler godoc
// @Summary Set the quantity of a cart line
// @Description A quantity of zero or less removes the line. Unknown products are ignored.
// @Tags cart
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param quantity body UpdateQuantityRequest true "New quantity"
// @Success 200 {object} CartResponse
// @Failure 400 {string} string "Invalid input"
// @Router /cart/items/{id} [put]
func (s *Server) UpdateCartItemHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(w, r)
	if !ok {
		return
	}
	var req UpdateQuantityRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.Quantity > cart.MaxQuantity {
		http.Error(w, fmt.Sprintf("quantity cannot exceed %d", cart.MaxQuantity), http.StatusBadRequest)
		return
	}

	store, ok := s.sessionCart(w, r)
	if !ok {
		return
	}
	store.UpdateQuantity(id, req.Quantity)
	writeCart(w, store)
}

// RemoveCartItemHandler godoc
// @Summary Remove a product from the cart
// @Tags cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} CartResponse
// @Failure 400 {string} string "Invalid ID"
// @Router /cart/items/{id} [delete]
func (s *Server) RemoveCartItemHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(w, r)
	if !ok {
		return
	}
	store, ok := s.sessionCart(w, r)
	if !ok {
		return
	}
	store.RemoveItem(id)
	writeCart(w, store)
}

// ClearCartHandler godoc
// @Summary Empty the cart
// @Tags cart
// @Produce json
// @Success 200 {object} CartResponse
// @Router /cart [delete]
func (s *Server) ClearCartHandler(w http.ResponseWriter, r *http.Request) {
	store, ok := s.sessionCart(w, r)
	if !ok {
		return
	}
	store.Clear()
	writeCart(w, store)
}
