package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/session"
	"github.com/stretchr/testify/mock"
)

type CartService struct {
	mock.Mock
}

func cartSummary(args mock.Arguments) (*models.CartSummary, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CartSummary), args.Error(1)
}

func (m *CartService) GetCart(ctx context.Context, sess *session.Session) (*models.CartSummary, error) {
	return cartSummary(m.Called(ctx, sess))
}

func (m *CartService) AddItem(ctx context.Context, sess *session.Session, productID int64) (*models.CartSummary, error) {
	return cartSummary(m.Called(ctx, sess, productID))
}

func (m *CartService) UpdateQuantity(ctx context.Context, sess *session.Session, productID int64, quantity int) (*models.CartSummary, error) {
	return cartSummary(m.Called(ctx, sess, productID, quantity))
}

func (m *CartService) IncrementItem(ctx context.Context, sess *session.Session, productID int64) (*models.CartSummary, error) {
	return cartSummary(m.Called(ctx, sess, productID))
}

func (m *CartService) DecrementItem(ctx context.Context, sess *session.Session, productID int64) (*models.CartSummary, error) {
	return cartSummary(m.Called(ctx, sess, productID))
}

func (m *CartService) RemoveItem(ctx context.Context, sess *session.Session, productID int64) (*models.CartSummary, error) {
	return cartSummary(m.Called(ctx, sess, productID))
}

func (m *CartService) ClearCart(ctx context.Context, sess *session.Session) (*models.CartSummary, error) {
	return cartSummary(m.Called(ctx, sess))
}
