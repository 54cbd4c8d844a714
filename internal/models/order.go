package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer holds the delivery details captured by the checkout form.
type Customer struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	ZipCode   string `json:"zip_code"`
	Phone     string `json:"phone,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// Order is the immutable record of a completed (simulated) checkout.
type Order struct {
	ID        string          `json:"id"`
	SessionID string          `json:"session_id"`
	Customer  Customer        `json:"customer"`
	Items     []CartLineItem  `json:"items"`
	ItemCount int             `json:"item_count"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}
