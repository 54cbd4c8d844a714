package repo

import (
	"context"

	"github.com/rogerio-castellano/storefront/internal/models"
)

// ProductRepository defines the read operations the storefront needs from the catalog.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int) (models.Product, error)
	GetByCategory(ctx context.Context, category string) ([]models.Product, error)
	GetCategories(ctx context.Context) ([]string, error)
}
