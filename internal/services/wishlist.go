package service

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/catalog"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/session"
	"github.com/aaravmahajanofficial/storefront/internal/tracing"
	"go.opentelemetry.io/otel/attribute"
)

type WishlistService interface {
	GetWishlist(ctx context.Context, sess *session.Session) (*models.WishlistSummary, error)
	AddItem(ctx context.Context, sess *session.Session, productID int64) (*models.WishlistSummary, error)
	RemoveItem(ctx context.Context, sess *session.Session, productID int64) (*models.WishlistSummary, error)
	ToggleItem(ctx context.Context, sess *session.Session, productID int64) (*models.WishlistToggleResponse, error)
	Contains(ctx context.Context, sess *session.Session, productID int64) (*models.WishlistMembershipResponse, error)
}

type wishlistService struct {
	catalog *catalog.Catalog
}

func NewWishlistService(c *catalog.Catalog) WishlistService {
	return &wishlistService{catalog: c}
}

func wishlistSummary(st *session.State) *models.WishlistSummary {
	return &models.WishlistSummary{
		Items:    st.Wishlist.Items(),
		Count:    st.Wishlist.Count(),
		Revision: st.Revision(),
	}
}

func (s *wishlistService) GetWishlist(ctx context.Context, sess *session.Session) (*models.WishlistSummary, error) {
	_, span := tracing.Tracer().Start(ctx, "WishlistService.GetWishlist")
	defer span.End()

	var summary *models.WishlistSummary
	sess.Do(func(st *session.State) {
		summary = wishlistSummary(st)
	})

	return summary, nil
}

func (s *wishlistService) AddItem(ctx context.Context, sess *session.Session, productID int64) (*models.WishlistSummary, error) {
	_, span := tracing.Tracer().Start(ctx, "WishlistService.AddItem")
	defer span.End()
	span.SetAttributes(attribute.Int64("product.id", productID))

	product, ok := s.catalog.Lookup(productID)
	if !ok {
		return nil, errors.NotFoundError("Product not found")
	}

	var summary *models.WishlistSummary
	sess.Do(func(st *session.State) {
		st.Wishlist.Add(product)
		summary = wishlistSummary(st)
	})

	return summary, nil
}

func (s *wishlistService) RemoveItem(ctx context.Context, sess *session.Session, productID int64) (*models.WishlistSummary, error) {
	_, span := tracing.Tracer().Start(ctx, "WishlistService.RemoveItem")
	defer span.End()
	span.SetAttributes(attribute.Int64("product.id", productID))

	var summary *models.WishlistSummary
	sess.Do(func(st *session.State) {
		st.Wishlist.Remove(productID)
		summary = wishlistSummary(st)
	})

	return summary, nil
}

func (s *wishlistService) ToggleItem(ctx context.Context, sess *session.Session, productID int64) (*models.WishlistToggleResponse, error) {
	_, span := tracing.Tracer().Start(ctx, "WishlistService.ToggleItem")
	defer span.End()
	span.SetAttributes(attribute.Int64("product.id", productID))

	product, ok := s.catalog.Lookup(productID)
	if !ok {
		return nil, errors.NotFoundError("Product not found")
	}

	resp := &models.WishlistToggleResponse{}
	sess.Do(func(st *session.State) {
		resp.InWishlist = st.Wishlist.Toggle(product)
		resp.Wishlist = wishlistSummary(st)
	})

	return resp, nil
}

func (s *wishlistService) Contains(ctx context.Context, sess *session.Session, productID int64) (*models.WishlistMembershipResponse, error) {
	resp := &models.WishlistMembershipResponse{ProductID: productID}
	sess.Do(func(st *session.State) {
		resp.InWishlist = st.Wishlist.Contains(productID)
	})

	return resp, nil
}
