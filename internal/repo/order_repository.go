package repo

import (
	"context"

	"github.com/rogerio-castellano/storefront/internal/models"
)

type OrderRepository interface {
	Create(ctx context.Context, order models.Order) (models.Order, error)
	GetByID(ctx context.Context, id string) (models.Order, error)
	GetDashboardMetrics(ctx context.Context) (Metrics, error)
}
