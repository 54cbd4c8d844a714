package handlers

import (
	"time"

	"github.com/rogerio-castellano/storefront/internal/models"
	repo "github.com/rogerio-castellano/storefront/internal/repo"
)

// Money amounts are rendered as strings with two decimals.

type RatingResponse struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

type ProductResponse struct {
	ID          int            `json:"id"`
	Title       string         `json:"title"`
	Price       string         `json:"price"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Image       string         `json:"image"`
	Rating      RatingResponse `json:"rating"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type ProductsSearchResult struct {
	Data []ProductResponse `json:"data"`
	Meta Meta              `json:"meta,omitempty"`
}

type CartItemResponse struct {
	Product  ProductResponse `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal string          `json:"subtotal"`
}

type CartResponse struct {
	Items     []CartItemResponse `json:"items"`
	ItemCount int                `json:"item_count"`
	Total     string             `json:"total"`
}

type AddItemRequest struct {
	ProductID int  `json:"product_id"`
	Quantity  *int `json:"quantity,omitempty"` // defaults to 1
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"` // zero or negative removes the item
}

type CheckoutRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	ZipCode   string `json:"zip_code"`
	Phone     string `json:"phone,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type OrderResponse struct {
	ID        string             `json:"id"`
	Customer  models.Customer    `json:"customer"`
	Items     []CartItemResponse `json:"items"`
	ItemCount int                `json:"item_count"`
	Total     string             `json:"total"`
	CreatedAt string             `json:"created_at"`
	Message   string             `json:"message"`
}

type BestSellingProductResponse struct {
	Title     string `json:"title"`
	UnitsSold int    `json:"units_sold"`
}

type MetricsResponse struct {
	TotalOrders        int                        `json:"total_orders"`
	ItemsSold          int                        `json:"items_sold"`
	Revenue            string                     `json:"revenue"`
	BestSellingProduct BestSellingProductResponse `json:"best_selling_product"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price.StringFixed(2),
		Description: p.Description,
		Category:    p.Category,
		Image:       p.Image,
		Rating:      RatingResponse{Rate: p.Rating.Rate, Count: p.Rating.Count},
	}
}

func toProductResponses(products []models.Product) []ProductResponse {
	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = toProductResponse(p)
	}
	return response
}

func toCartItemResponses(items []models.CartLineItem) []CartItemResponse {
	response := make([]CartItemResponse, len(items))
	for i, item := range items {
		response[i] = CartItemResponse{
			Product:  toProductResponse(item.Product),
			Quantity: item.Quantity,
			Subtotal: item.Subtotal().StringFixed(2),
		}
	}
	return response
}

func toOrderResponse(o models.Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID,
		Customer:  o.Customer,
		Items:     toCartItemResponses(o.Items),
		ItemCount: o.ItemCount,
		Total:     o.Total.StringFixed(2),
		CreatedAt: o.CreatedAt.Format(time.RFC3339),
		Message:   "Your items will be delivered within 2-3 business days.",
	}
}

func toMetricsResponse(m repo.Metrics) MetricsResponse {
	return MetricsResponse{
		TotalOrders: m.TotalOrders,
		ItemsSold:   m.ItemsSold,
		Revenue:     m.Revenue.StringFixed(2),
		BestSellingProduct: BestSellingProductResponse{
			Title:     m.BestSellingProduct.Title,
			UnitsSold: m.BestSellingProduct.UnitsSold,
		},
	}
}
