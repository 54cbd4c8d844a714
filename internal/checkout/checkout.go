package checkout

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rogerio-castellano/storefront/internal/cart"
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/notify"
	"github.com/rogerio-castellano/storefront/internal/repo"
	log "github.com/sirupsen/logrus"
)

var ErrEmptyCart = errors.New("cart is empty")

// Service runs the simulated checkout: there is no payment gateway, processing is a fixed delay.
type Service struct {
	orders   repo.OrderRepository
	notifier notify.Notifier
	delay    time.Duration
	now      func() time.Time
}

func NewService(orders repo.OrderRepository, notifier notify.Notifier, processingDelay time.Duration) *Service {
	if notifier == nil {
		notifier = notify.NopNotifier{}
	}
	return &Service{
		orders:   orders,
		notifier: notifier,
		delay:    processingDelay,
		now:      time.Now,
	}
}

// PlaceOrder turns the current cart contents into an order and clears the cart. If ctx is done
// during processing nothing is recorded and the cart is left as it was. Items added while the
// order is being recorded stay in the cart; if recording fails the ordered items are put back.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string, store *cart.Store, customer models.Customer) (models.Order, error) {
	if store.ItemCount() == 0 {
		return models.Order{}, ErrEmptyCart
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return models.Order{}, errors.Wrap(ctx.Err(), "checkout aborted")
		case <-timer.C:
		}
	}

	items, count, total := store.TakeAll()
	if count == 0 {
		return models.Order{}, ErrEmptyCart
	}

	order := models.Order{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Customer:  customer,
		Items:     items,
		ItemCount: count,
		Total:     total,
		CreatedAt: s.now().UTC(),
	}

	order, err := s.orders.Create(ctx, order)
	if err != nil {
		store.Restore(items)
		return models.Order{}, errors.Wrap(err, "could not record order")
	}

	if err := s.notifier.OrderPlaced(ctx, order); err != nil {
		log.WithField("order_id", order.ID).Printf("order notification failed: %v", err)
	}

	log.WithFields(log.Fields{
		"order_id":   order.ID,
		"item_count": order.ItemCount,
		"total":      order.Total.StringFixed(2),
	}).Info("order placed")

	return order, nil
}
