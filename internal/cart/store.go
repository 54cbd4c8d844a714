package cart

import (
	"sync"

	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/shopspring/decimal"
)

// MaxQuantity is the largest quantity a single line item can hold. Additions beyond it saturate.
const MaxQuantity = 9999

// Listener receives a snapshot of the line items after a mutation changed the cart. Listeners
// are called one at a time, and a snapshot older than one already delivered is never delivered.
// A listener must not mutate the store it is subscribed to.
type Listener func(items []models.CartLineItem)

// Store is the authoritative in-memory cart of one session. Line items keep insertion order and
// there is at most one line per product ID. Every mutation either fully applies or has no effect.
type Store struct {
	mu        sync.Mutex
	items     []models.CartLineItem
	listeners map[int]Listener
	nextID    int
	version   uint64

	notifyMu  sync.Mutex
	delivered uint64
}

// NewStore creates a cart holding the given line items. Lines with a quantity below 1 are dropped
// and repeated product IDs are merged.
func NewStore(items ...models.CartLineItem) *Store {
	s := &Store{listeners: map[int]Listener{}}
	s.merge(items)
	return s
}

// merge adds the quantities of items to the cart, appending lines for new products.
func (s *Store) merge(items []models.CartLineItem) bool {
	changed := false
	for _, item := range items {
		if item.Quantity < 1 {
			continue
		}
		if i := s.indexOf(item.ID); i >= 0 {
			q := addQuantity(s.items[i].Quantity, item.Quantity)
			changed = changed || q != s.items[i].Quantity
			s.items[i].Quantity = q
			continue
		}
		item.Quantity = min(item.Quantity, MaxQuantity)
		s.items = append(s.items, item)
		changed = true
	}
	return changed
}

func addQuantity(current, n int) int {
	if n >= MaxQuantity-current {
		return MaxQuantity
	}
	return current + n
}

// AddItem increments the quantity of the product's line item, appending a new line with
// quantity 1 when the product is not in the cart yet.
func (s *Store) AddItem(product models.Product) {
	s.AddItems(product, 1)
}

// AddItems applies n AddItem increments as a single mutation. n <= 0 is a no-op. The resulting
// quantity is capped at MaxQuantity.
func (s *Store) AddItems(product models.Product, n int) {
	if n <= 0 {
		return
	}

	s.mu.Lock()
	if !s.merge([]models.CartLineItem{{Product: product, Quantity: n}}) {
		s.mu.Unlock()
		return
	}
	s.commit()
}

// UpdateQuantity sets the quantity of a line item. A quantity of zero or less removes the line.
// Unknown product IDs are ignored.
func (s *Store) UpdateQuantity(productID, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(productID)
		return
	}

	quantity = min(quantity, MaxQuantity)

	s.mu.Lock()
	i := s.indexOf(productID)
	if i < 0 || s.items[i].Quantity == quantity {
		s.mu.Unlock()
		return
	}
	s.items[i].Quantity = quantity
	s.commit()
}

// RemoveItem drops the line item of the product, if present.
func (s *Store) RemoveItem(productID int) {
	s.mu.Lock()
	i := s.indexOf(productID)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	s.commit()
}

// Clear empties the cart unconditionally.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	s.commit()
}

// TakeAll empties the cart and returns what it held, as one mutation. It is a no-op on an empty
// cart.
func (s *Store) TakeAll() ([]models.CartLineItem, int, decimal.Decimal) {
	s.mu.Lock()
	items := s.items
	if len(items) == 0 {
		s.mu.Unlock()
		return []models.CartLineItem{}, 0, decimal.Zero
	}
	s.items = nil
	s.commit()
	return items, itemCount(items), total(items)
}

// Restore puts items previously returned by TakeAll back in front of whatever the cart holds now,
// merging lines of the same product.
func (s *Store) Restore(items []models.CartLineItem) {
	s.mu.Lock()
	current := s.items
	s.items = nil
	s.merge(items)
	s.merge(current)
	s.commit()
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []models.CartLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// ItemCount is the sum of all quantities.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return itemCount(s.items)
}

// Total is the exact sum of price x quantity over all line items. Round only for display.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return total(s.items)
}

// Summary returns items, item count and total computed from one consistent view of the cart.
func (s *Store) Summary() ([]models.CartLineItem, int, decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(), itemCount(s.items), total(s.items)
}

// Subscribe registers a listener notified after each mutation. The returned function removes it.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// commit must be called with s.mu held; it releases the lock before notifying. Notifications
// are serialised on notifyMu and stale snapshots are dropped, so the last snapshot delivered is
// always the latest state.
func (s *Store) commit() {
	s.version++
	version := s.version
	items := s.snapshot()
	listeners := make([]Listener, 0, len(s.listeners))
	for id := 0; id < s.nextID; id++ {
		if l, ok := s.listeners[id]; ok {
			listeners = append(listeners, l)
		}
	}
	s.mu.Unlock()

	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	if version < s.delivered {
		return
	}
	s.delivered = version
	for _, l := range listeners {
		l(items)
	}
}

func (s *Store) snapshot() []models.CartLineItem {
	return append([]models.CartLineItem{}, s.items...)
}

func (s *Store) indexOf(productID int) int {
	for i, item := range s.items {
		if item.ID == productID {
			return i
		}
	}
	return -1
}

func itemCount(items []models.CartLineItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

func total(items []models.CartLineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Subtotal())
	}
	return sum
}
