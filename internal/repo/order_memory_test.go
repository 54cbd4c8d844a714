package repo

import (
	"context"
	"testing"
	"time"

	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(id string, items ...models.CartLineItem) models.Order {
	count := 0
	total := decimal.Zero
	for _, item := range items {
		count += item.Quantity
		total = total.Add(item.Subtotal())
	}
	return models.Order{
		ID:        id,
		SessionID: "session-" + id,
		Customer:  models.Customer{Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"},
		Items:     items,
		ItemCount: count,
		Total:     total,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
}

func line(id int, title, price string, qty int) models.CartLineItem {
	return models.CartLineItem{
		Product:  models.Product{ID: id, Title: title, Price: decimal.RequireFromString(price)},
		Quantity: qty,
	}
}

func TestInMemoryOrderRepository(t *testing.T) {
	r := NewInMemoryOrderRepository()
	ctx := context.Background()

	m, err := r.GetDashboardMetrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, m.TotalOrders)
	assert.True(t, m.Revenue.IsZero())

	_, err = r.Create(ctx, newTestOrder("a", line(1, "Blue Shirt", "20.00", 2), line(2, "Gold Ring", "100.00", 1)))
	require.NoError(t, err)
	_, err = r.Create(ctx, newTestOrder("b", line(1, "Blue Shirt", "20.00", 1)))
	require.NoError(t, err)

	got, err := r.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 3, got.ItemCount)

	_, err = r.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrOrderNotFound)

	m, err = r.GetDashboardMetrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, m.TotalOrders)
	assert.Equal(t, 4, m.ItemsSold)
	assert.Equal(t, "160.00", m.Revenue.StringFixed(2))
	assert.Equal(t, BestSellingProduct{Title: "Blue Shirt", UnitsSold: 3}, m.BestSellingProduct)
}
