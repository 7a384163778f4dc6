package checkout

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/pricing"
)

const orderIDPrefix = "OD"

// Assembler turns a cart snapshot into an immutable Order. One Assembler
// should serve the whole process so that order ids stay unique.
type Assembler struct {
	now    func() time.Time
	lastID atomic.Int64
}

func NewAssembler(now func() time.Time) *Assembler {
	if now == nil {
		now = time.Now
	}
	return &Assembler{now: now}
}

// nextID is the placement time in unix millis, bumped past the last issued id
// when two orders land in the same millisecond.
func (a *Assembler) nextID(t time.Time) string {
	ms := t.UnixMilli()
	for {
		last := a.lastID.Load()
		next := max(ms, last+1)
		if a.lastID.CompareAndSwap(last, next) {
			return orderIDPrefix + strconv.FormatInt(next, 10)
		}
	}
}

// Place prices items and freezes them into an Order. It has no side effects on
// the caller's cart; items are deep-copied.
func (a *Assembler) Place(items []models.CartItem, info models.ShippingInfo) models.Order {
	frozen := make([]models.CartItem, len(items))
	for i, item := range items {
		frozen[i] = models.CartItem{Product: item.Product.Clone(), Quantity: item.Quantity}
	}

	price := pricing.Breakdown(frozen)
	placedAt := a.now()

	return models.Order{
		ID:           a.nextID(placedAt),
		Items:        frozen,
		ShippingInfo: info,
		Subtotal:     price.Subtotal,
		ShippingCost: price.ShippingCost,
		Total:        price.Total,
		PlacedAt:     placedAt,
	}
}
