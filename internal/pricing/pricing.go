// Package pricing derives subtotals, shipping and discounts from catalog prices.
//
// Sums are carried out in decimal so that repeated additions of fractional
// prices do not drift; results are handed back as float64 to match the models.
package pricing

import (
	"math"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/shopspring/decimal"
)

const (
	// FreeShippingThreshold is exclusive: a subtotal must exceed it to ship free.
	FreeShippingThreshold = 5000
	FlatShippingFee       = 99
)

var (
	freeShippingThreshold = decimal.NewFromInt(FreeShippingThreshold)
	flatShippingFee       = decimal.NewFromInt(FlatShippingFee)
)

func subtotal(items []models.CartItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		sum = sum.Add(line)
	}
	return sum
}

func shipping(sub decimal.Decimal) decimal.Decimal {
	if sub.GreaterThan(freeShippingThreshold) {
		return decimal.Zero
	}
	return flatShippingFee
}

// Subtotal is Σ(price × quantity) over items.
func Subtotal(items []models.CartItem) float64 {
	return subtotal(items).InexactFloat64()
}

// ShippingCost returns 0 when subtotal > FreeShippingThreshold, FlatShippingFee otherwise.
func ShippingCost(sub float64) float64 {
	return shipping(decimal.NewFromFloat(sub)).InexactFloat64()
}

// Breakdown computes subtotal, shipping and total in one pass.
func Breakdown(items []models.CartItem) models.PriceBreakdown {
	sub := subtotal(items)
	ship := shipping(sub)

	return models.PriceBreakdown{
		Subtotal:     sub.InexactFloat64(),
		ShippingCost: ship.InexactFloat64(),
		Total:        sub.Add(ship).InexactFloat64(),
	}
}

// DiscountPercent is round((original - price) / original * 100), with halves
// rounded toward positive infinity. Products without a usable original price
// have no discount.
func DiscountPercent(p models.Product) int {
	if p.OriginalPrice <= 0 {
		return 0
	}
	// the conversion keeps the product from being fused with the +0.5
	pct := float64((p.OriginalPrice - p.Price) / p.OriginalPrice * 100)
	return int(math.Floor(pct + 0.5))
}

// View decorates a product with its derived discount.
func View(p models.Product) models.ProductView {
	return models.ProductView{Product: p, DiscountPercent: DiscountPercent(p)}
}
