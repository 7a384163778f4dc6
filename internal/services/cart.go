package service

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/catalog"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/pricing"
	"github.com/aaravmahajanofficial/storefront/internal/session"
	"github.com/aaravmahajanofficial/storefront/internal/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type CartService interface {
	GetCart(ctx context.Context, sess *session.Session) (*models.CartSummary, error)
	AddItem(ctx context.Context, sess *session.Session, productID int64) (*models.CartSummary, error)
	UpdateQuantity(ctx context.Context, sess *session.Session, productID int64, quantity int) (*models.CartSummary, error)
	IncrementItem(ctx context.Context, sess *session.Session, productID int64) (*models.CartSummary, error)
	DecrementItem(ctx context.Context, sess *session.Session, productID int64) (*models.CartSummary, error)
	RemoveItem(ctx context.Context, sess *session.Session, productID int64) (*models.CartSummary, error)
	ClearCart(ctx context.Context, sess *session.Session) (*models.CartSummary, error)
}

type cartService struct {
	catalog *catalog.Catalog
}

func NewCartService(c *catalog.Catalog) CartService {
	return &cartService{catalog: c}
}

func cartSummary(st *session.State) *models.CartSummary {
	items := st.Cart.Items()
	breakdown := pricing.Breakdown(items)

	return &models.CartSummary{
		Items:        items,
		Count:        st.Cart.Count(),
		Subtotal:     breakdown.Subtotal,
		ShippingCost: breakdown.ShippingCost,
		Total:        breakdown.Total,
		Revision:     st.Revision(),
	}
}

// mutate runs op under the session lock and returns the resulting summary.
func (s *cartService) mutate(ctx context.Context, name string, sess *session.Session, productID int64, op func(st *session.State)) *models.CartSummary {
	_, span := tracing.Tracer().Start(ctx, "CartService."+name, trace.WithAttributes(
		attribute.String("session.id", sess.ID),
		attribute.Int64("product.id", productID),
	))
	defer span.End()

	var summary *models.CartSummary
	sess.Do(func(st *session.State) {
		op(st)
		summary = cartSummary(st)
	})

	span.SetAttributes(attribute.Int("cart.count", summary.Count))
	return summary
}

func (s *cartService) GetCart(ctx context.Context, sess *session.Session) (*models.CartSummary, error) {
	return s.mutate(ctx, "GetCart", sess, 0, func(*session.State) {}), nil
}

func (s *cartService) AddItem(ctx context.Context, sess *session.Session, productID int64) (*models.CartSummary, error) {
	product, ok := s.catalog.Lookup(productID)
	if !ok {
		return nil, errors.NotFoundError("Product not found")
	}

	return s.mutate(ctx, "AddItem", sess, productID, func(st *session.State) {
		st.Cart.Add(product)
	}), nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, sess *session.Session, productID int64, quantity int) (*models.CartSummary, error) {
	return s.mutate(ctx, "UpdateQuantity", sess, productID, func(st *session.State) {
		st.Cart.UpdateQuantity(productID, quantity)
	}), nil
}

func (s *cartService) IncrementItem(ctx context.Context, sess *session.Session, productID int64) (*models.CartSummary, error) {
	return s.mutate(ctx, "IncrementItem", sess, productID, func(st *session.State) {
		st.Cart.Increment(productID)
	}), nil
}

func (s *cartService) DecrementItem(ctx context.Context, sess *session.Session, productID int64) (*models.CartSummary, error) {
	return s.mutate(ctx, "DecrementItem", sess, productID, func(st *session.State) {
		st.Cart.Decrement(productID)
	}), nil
}

func (s *cartService) RemoveItem(ctx context.Context, sess *session.Session, productID int64) (*models.CartSummary, error) {
	return s.mutate(ctx, "RemoveItem", sess, productID, func(st *session.State) {
		st.Cart.Remove(productID)
	}), nil
}

func (s *cartService) ClearCart(ctx context.Context, sess *session.Session) (*models.CartSummary, error) {
	return s.mutate(ctx, "ClearCart", sess, 0, func(st *session.State) {
		st.Cart.Clear()
	}), nil
}
