// Package cart holds a shopper's cart: quantity-annotated products kept in
// insertion order, at most one entry per product id.
//
// A Store is not safe for concurrent use; callers serialize access (see
// session.Session.Do).
package cart

import (
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/pricing"
)

type Op string

const (
	OpAdd    Op = "add"
	OpUpdate Op = "update"
	OpRemove Op = "remove"
	OpClear  Op = "clear"
)

// Event describes one effective mutation. Quantity is the entry's quantity
// after the mutation (0 for remove and clear).
type Event struct {
	Op        Op
	ProductID int64
	Quantity  int
}

type Listener func(Event)

type Store struct {
	entries []models.CartItem
	notify  Listener
}

func NewStore(notify Listener) *Store {
	if notify == nil {
		notify = func(Event) {}
	}
	return &Store{notify: notify}
}

func (s *Store) find(productID int64) int {
	for i := range s.entries {
		if s.entries[i].ID == productID {
			return i
		}
	}
	return -1
}

// Add increments the quantity of an existing entry or appends a new one with quantity 1.
func (s *Store) Add(product models.Product) {
	if i := s.find(product.ID); i >= 0 {
		s.entries[i].Quantity++
		s.notify(Event{Op: OpAdd, ProductID: product.ID, Quantity: s.entries[i].Quantity})
		return
	}

	s.entries = append(s.entries, models.CartItem{Product: product.Clone(), Quantity: 1})
	s.notify(Event{Op: OpAdd, ProductID: product.ID, Quantity: 1})
}

func (s *Store) Remove(productID int64) {
	i := s.find(productID)
	if i < 0 {
		return
	}

	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	s.notify(Event{Op: OpRemove, ProductID: productID})
}

// UpdateQuantity sets an entry's quantity. Non-positive quantities remove the
// entry. Unknown ids are ignored.
func (s *Store) UpdateQuantity(productID int64, quantity int) {
	if quantity <= 0 {
		s.Remove(productID)
		return
	}

	i := s.find(productID)
	if i < 0 || s.entries[i].Quantity == quantity {
		return
	}

	s.entries[i].Quantity = quantity
	s.notify(Event{Op: OpUpdate, ProductID: productID, Quantity: quantity})
}

func (s *Store) Increment(productID int64) {
	if q := s.Quantity(productID); q > 0 {
		s.UpdateQuantity(productID, q+1)
	}
}

// Decrement lowers the quantity by one; an entry at 1 is removed.
func (s *Store) Decrement(productID int64) {
	if q := s.Quantity(productID); q > 0 {
		s.UpdateQuantity(productID, q-1)
	}
}

func (s *Store) Clear() {
	if len(s.entries) == 0 {
		return
	}

	s.entries = nil
	s.notify(Event{Op: OpClear})
}

// Items returns the entries in insertion order. The slice is a copy; product
// slices are shared with the store and must be treated as read-only.
func (s *Store) Items() []models.CartItem {
	items := make([]models.CartItem, len(s.entries))
	copy(items, s.entries)
	return items
}

// Quantity returns 0 for products not in the cart.
func (s *Store) Quantity(productID int64) int {
	if i := s.find(productID); i >= 0 {
		return s.entries[i].Quantity
	}
	return 0
}

func (s *Store) Len() int {
	return len(s.entries)
}

// Count is the sum of quantities across entries.
func (s *Store) Count() int {
	n := 0
	for _, e := range s.entries {
		n += e.Quantity
	}
	return n
}

func (s *Store) Subtotal() float64 {
	return pricing.Subtotal(s.entries)
}
