package cart_test

import (
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/cart"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	phone   = models.Product{ID: 1, Name: "Pixel 9", Brand: "Google", Price: 2000, OriginalPrice: 2500, Images: []string{"a.jpg"}}
	earbuds = models.Product{ID: 2, Name: "Buds Pro", Brand: "Samsung", Price: 1500, OriginalPrice: 1800}
	charger = models.Product{ID: 3, Name: "Charger", Brand: "Anker", Price: 99.5, OriginalPrice: 120}
)

type recorder struct {
	events []cart.Event
}

func (r *recorder) listen(e cart.Event) {
	r.events = append(r.events, e)
}

func newStore() (*cart.Store, *recorder) {
	rec := &recorder{}
	return cart.NewStore(rec.listen), rec
}

func TestAdd(t *testing.T) {
	t.Run("Success - Repeated Adds Collapse Into One Entry", func(t *testing.T) {
		// Arrange
		store, rec := newStore()

		// Act
		for range 5 {
			store.Add(phone)
		}

		// Assert
		items := store.Items()
		require.Len(t, items, 1)
		assert.Equal(t, phone.ID, items[0].ID)
		assert.Equal(t, 5, items[0].Quantity)
		assert.Equal(t, 5, store.Count())
		assert.Len(t, rec.events, 5)
		assert.Equal(t, cart.Event{Op: cart.OpAdd, ProductID: phone.ID, Quantity: 5}, rec.events[4])
	})

	t.Run("Success - Insertion Order Preserved", func(t *testing.T) {
		store, _ := newStore()

		store.Add(earbuds)
		store.Add(phone)
		store.Add(earbuds)

		items := store.Items()
		require.Len(t, items, 2)
		assert.Equal(t, earbuds.ID, items[0].ID)
		assert.Equal(t, 2, items[0].Quantity)
		assert.Equal(t, phone.ID, items[1].ID)
		assert.Equal(t, 1, items[1].Quantity)
	})

	t.Run("Success - Entry Does Not Alias Caller Product", func(t *testing.T) {
		store, _ := newStore()
		p := phone.Clone()

		store.Add(p)
		p.Images[0] = "mutated.jpg"

		assert.Equal(t, "a.jpg", store.Items()[0].Images[0])
	})
}

func TestRemove(t *testing.T) {
	t.Run("Success - Removes Entry", func(t *testing.T) {
		store, rec := newStore()
		store.Add(phone)
		store.Add(earbuds)

		store.Remove(phone.ID)

		items := store.Items()
		require.Len(t, items, 1)
		assert.Equal(t, earbuds.ID, items[0].ID)
		assert.Equal(t, cart.Event{Op: cart.OpRemove, ProductID: phone.ID}, rec.events[len(rec.events)-1])
	})

	t.Run("Success - Absent Entry Is A No-op", func(t *testing.T) {
		store, rec := newStore()
		store.Add(phone)

		store.Remove(earbuds.ID)

		assert.Equal(t, 1, store.Len())
		assert.Len(t, rec.events, 1)
	})
}

func TestUpdateQuantity(t *testing.T) {
	t.Run("Success - Sets Quantity Without Upper Bound", func(t *testing.T) {
		store, _ := newStore()
		store.Add(phone)

		store.UpdateQuantity(phone.ID, 1000)

		assert.Equal(t, 1000, store.Quantity(phone.ID))
	})

	for _, q := range []int{0, -1, -50} {
		t.Run("Success - Non-positive Quantity Removes Entry", func(t *testing.T) {
			store, _ := newStore()
			store.Add(phone)
			store.UpdateQuantity(phone.ID, 7)

			store.UpdateQuantity(phone.ID, q)

			assert.Equal(t, 0, store.Len())
			assert.Equal(t, 0, store.Quantity(phone.ID))
		})
	}

	t.Run("Success - Absent Entry Is A No-op", func(t *testing.T) {
		store, rec := newStore()

		store.UpdateQuantity(phone.ID, 3)

		assert.Equal(t, 0, store.Len())
		assert.Empty(t, rec.events)
	})

	t.Run("Success - Unchanged Quantity Emits Nothing", func(t *testing.T) {
		store, rec := newStore()
		store.Add(phone)

		store.UpdateQuantity(phone.ID, 1)

		assert.Len(t, rec.events, 1)
	})
}

func TestIncrementDecrement(t *testing.T) {
	t.Run("Success - Increment And Decrement", func(t *testing.T) {
		store, _ := newStore()
		store.Add(phone)

		store.Increment(phone.ID)
		store.Increment(phone.ID)
		store.Decrement(phone.ID)

		assert.Equal(t, 2, store.Quantity(phone.ID))
	})

	t.Run("Success - Decrement From One Removes Entry", func(t *testing.T) {
		store, _ := newStore()
		store.Add(phone)

		store.Decrement(phone.ID)

		assert.Equal(t, 0, store.Len())
	})

	t.Run("Success - Increment Of Absent Entry Is A No-op", func(t *testing.T) {
		store, _ := newStore()

		store.Increment(phone.ID)

		assert.Equal(t, 0, store.Len())
	})
}

func TestClear(t *testing.T) {
	t.Run("Success - Empties Cart", func(t *testing.T) {
		store, rec := newStore()
		store.Add(phone)
		store.Add(earbuds)

		store.Clear()

		assert.Empty(t, store.Items())
		assert.Equal(t, 0, store.Count())
		assert.Equal(t, 0.0, store.Subtotal())
		assert.Equal(t, cart.OpClear, rec.events[len(rec.events)-1].Op)
	})

	t.Run("Success - Clearing Empty Cart Emits Nothing", func(t *testing.T) {
		store, rec := newStore()

		store.Clear()

		assert.Empty(t, rec.events)
	})
}

func TestDerivedReads(t *testing.T) {
	t.Run("Success - Subtotal Matches Independent Recomputation", func(t *testing.T) {
		store, _ := newStore()
		store.Add(phone)
		store.Add(phone)
		store.Add(earbuds)
		store.Add(charger)
		store.UpdateQuantity(charger.ID, 3)

		var want float64
		for _, item := range store.Items() {
			want += item.Price * float64(item.Quantity)
		}

		assert.InDelta(t, want, store.Subtotal(), 1e-9)
		assert.Equal(t, 5798.5, store.Subtotal())
		assert.Equal(t, 6, store.Count())
	})

	t.Run("Success - Items Returns A Copy", func(t *testing.T) {
		store, _ := newStore()
		store.Add(phone)

		items := store.Items()
		items[0].Quantity = 42

		assert.Equal(t, 1, store.Quantity(phone.ID))
	})

	t.Run("Success - Nil Listener Is Allowed", func(t *testing.T) {
		store := cart.NewStore(nil)

		assert.NotPanics(t, func() { store.Add(phone) })
	})
}
