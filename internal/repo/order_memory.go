package repo

import (
	"context"
	"sync"

	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/shopspring/decimal"
)

type InMemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []models.Order
}

func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders: []models.Order{},
	}
}

func (r *InMemoryOrderRepository) Create(_ context.Context, order models.Order) (models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, order)
	return order, nil
}

func (r *InMemoryOrderRepository) GetByID(_ context.Context, id string) (models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

// GetDashboardMetrics implements OrderRepository.
func (r *InMemoryOrderRepository) GetDashboardMetrics(_ context.Context) (Metrics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m := Metrics{Revenue: decimal.Zero}
	unitsByTitle := map[string]int{}

	for _, o := range r.orders {
		m.TotalOrders++
		m.ItemsSold += o.ItemCount
		m.Revenue = m.Revenue.Add(o.Total)
		for _, item := range o.Items {
			unitsByTitle[item.Title] += item.Quantity
		}
	}

	for title, units := range unitsByTitle {
		best := m.BestSellingProduct
		if units > best.UnitsSold || (units == best.UnitsSold && title < best.Title) {
			m.BestSellingProduct = BestSellingProduct{Title: title, UnitsSold: units}
		}
	}

	return m, nil
}
