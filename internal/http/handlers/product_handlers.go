package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/storefront/internal/catalog"
)

// HealthHandler godoc
// @Summary Liveness probe
// @Tags health
// @Produce plain
// @Success 200 {string} string "ok"
// @Router /health [get]
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// GetProductsHandler godoc
// @Summary List and filter products
// @Description Lists the catalog narrowed by an optional exact category and a free-text query over title, description and category.
// @Tags products
// @Produce json
// @Param category query string false "Category (case-insensitive exact match)"
// @Param q query string false "Search text"
// @Success 200 {object} ProductsSearchResult
// @Failure 503 {string} string "Catalog unavailable"
// @Router /products [get]
func (s *Server) GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := s.products.GetAll(r.Context())
	if err != nil {
		catalogError(w, err)
		return
	}

	criteria := catalog.Criteria{Query: r.URL.Query().Get("q")}
	if category := r.URL.Query().Get("category"); category != "" {
		criteria.Category = &category
	}
	filtered := catalog.Filter(products, criteria)

	respond(w, http.StatusOK, ProductsSearchResult{
		Data: toProductResponses(filtered),
		Meta: Meta{TotalCount: len(filtered)},
	})
}

// GetCategoriesHandler godoc
// @Summary List categories
// @Tags products
// @Produce json
// @Success 200 {array} string
// @Failure 503 {string} string "Catalog unavailable"
// @Router /products/categories [get]
func (s *Server) GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := s.products.GetCategories(r.Context())
	if err != nil {
		catalogError(w, err)
		return
	}
	respond(w, http.StatusOK, categories)
}

// GetProductsByCategoryHandler godoc
// @Summary List the products of one category
// @Tags products
// @Produce json
// @Param category path string true "Category"
// @Success 200 {object} ProductsSearchResult
// @Failure 400 {string} string "Invalid category"
// @Failure 503 {string} string "Catalog unavailable"
// @Router /products/category/{category} [get]
func (s *Server) GetProductsByCategoryHandler(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	if category == "" {
		http.Error(w, "invalid category", http.StatusBadRequest)
		return
	}

	products, err := s.products.GetByCategory(r.Context(), category)
	if err != nil {
		catalogError(w, err)
		return
	}
	respond(w, http.StatusOK, ProductsSearchResult{
		Data: toProductResponses(products),
		Meta: Meta{TotalCount: len(products)},
	})
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 503 {string} string "Catalog unavailable"
// @Router /products/{id} [get]
func (s *Server) GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := s.products.GetByID(r.Context(), id)
	if err != nil {
		catalogError(w, err)
		return
	}
	respond(w, http.StatusOK, toProductResponse(product))
}
