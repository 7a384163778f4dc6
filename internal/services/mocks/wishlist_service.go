package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/session"
	"github.com/stretchr/testify/mock"
)

type WishlistService struct {
	mock.Mock
}

func wishlistSummary(args mock.Arguments) (*models.WishlistSummary, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WishlistSummary), args.Error(1)
}

func (m *WishlistService) GetWishlist(ctx context.Context, sess *session.Session) (*models.WishlistSummary, error) {
	return wishlistSummary(m.Called(ctx, sess))
}

func (m *WishlistService) AddItem(ctx context.Context, sess *session.Session, productID int64) (*models.WishlistSummary, error) {
	return wishlistSummary(m.Called(ctx, sess, productID))
}

func (m *WishlistService) RemoveItem(ctx context.Context, sess *session.Session, productID int64) (*models.WishlistSummary, error) {
	return wishlistSummary(m.Called(ctx, sess, productID))
}

func (m *WishlistService) ToggleItem(ctx context.Context, sess *session.Session, productID int64) (*models.WishlistToggleResponse, error) {
	args := m.Called(ctx, sess, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WishlistToggleResponse), args.Error(1)
}

func (m *WishlistService) Contains(ctx context.Context, sess *session.Session, productID int64) (*models.WishlistMembershipResponse, error) {
	args := m.Called(ctx, sess, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WishlistMembershipResponse), args.Error(1)
}
