package repo

import (
	"context"
	"sync"

	"github.com/rogerio-castellano/storefront/internal/models"
)

type InMemoryCartRepository struct {
	mu    sync.Mutex
	carts map[string][]models.CartLineItem
}

func NewInMemoryCartRepository() *InMemoryCartRepository {
	return &InMemoryCartRepository{
		carts: map[string][]models.CartLineItem{},
	}
}

func (r *InMemoryCartRepository) Load(_ context.Context, sessionID string) ([]models.CartLineItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items, ok := r.carts[sessionID]
	if !ok {
		return nil, ErrCartNotFound
	}
	return append([]models.CartLineItem{}, items...), nil
}

func (r *InMemoryCartRepository) Save(_ context.Context, sessionID string, items []models.CartLineItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[sessionID] = append([]models.CartLineItem{}, items...)
	return nil
}

func (r *InMemoryCartRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
	return nil
}
