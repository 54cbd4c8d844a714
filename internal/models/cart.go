package models

import "github.com/shopspring/decimal"

// CartLineItem is one product in a cart together with the requested quantity.
// Quantity is always at least 1.
type CartLineItem struct {
	Product
	Quantity int `json:"quantity"`
}

func (i CartLineItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
