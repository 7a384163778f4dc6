// Package wishlist keeps a quantity-less, insertion-ordered set of products.
// Like cart.Store it is not safe for concurrent use.
package wishlist

import "github.com/aaravmahajanofficial/storefront/internal/models"

type Op string

const (
	OpAdd    Op = "add"
	OpRemove Op = "remove"
)

type Event struct {
	Op        Op
	ProductID int64
}

type Listener func(Event)

type Store struct {
	items  []models.Product
	index  map[int64]struct{}
	notify Listener
}

func NewStore(notify Listener) *Store {
	if notify == nil {
		notify = func(Event) {}
	}
	return &Store{
		index:  make(map[int64]struct{}),
		notify: notify,
	}
}

// Add is idempotent by product id.
func (s *Store) Add(product models.Product) {
	if s.Contains(product.ID) {
		return
	}

	s.items = append(s.items, product.Clone())
	s.index[product.ID] = struct{}{}
	s.notify(Event{Op: OpAdd, ProductID: product.ID})
}

func (s *Store) Remove(productID int64) {
	if !s.Contains(productID) {
		return
	}

	delete(s.index, productID)
	for i := range s.items {
		if s.items[i].ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.notify(Event{Op: OpRemove, ProductID: productID})
}

// Toggle flips membership and reports whether the product is wishlisted afterwards.
func (s *Store) Toggle(product models.Product) bool {
	if s.Contains(product.ID) {
		s.Remove(product.ID)
		return false
	}

	s.Add(product)
	return true
}

func (s *Store) Contains(productID int64) bool {
	_, ok := s.index[productID]
	return ok
}

func (s *Store) Items() []models.Product {
	items := make([]models.Product, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Store) Count() int {
	return len(s.items)
}
