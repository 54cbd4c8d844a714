package repo

import (
	"context"

	"github.com/rogerio-castellano/storefront/internal/models"
)

// CartRepository persists cart contents per session. Load returns ErrCartNotFound for a session
// that has never saved anything.
type CartRepository interface {
	Load(ctx context.Context, sessionID string) ([]models.CartLineItem, error)
	Save(ctx context.Context, sessionID string, items []models.CartLineItem) error
	Delete(ctx context.Context, sessionID string) error
}
