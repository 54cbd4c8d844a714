package models

import "github.com/shopspring/decimal"

// Product represents a catalog item as served by the upstream catalog API.
// Products are read-only to the storefront.
type Product struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Rating      Rating          `json:"rating"`
}

// Rating is the average review score (0-5) and the number of reviews.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}
