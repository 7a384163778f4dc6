package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/session"
	"github.com/stretchr/testify/mock"
)

type CheckoutService struct {
	mock.Mock
}

func (m *CheckoutService) Validate(ctx context.Context, info *models.ShippingInfo) (*models.ValidateShippingResponse, error) {
	args := m.Called(ctx, info)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ValidateShippingResponse), args.Error(1)
}

func (m *CheckoutService) PlaceOrder(ctx context.Context, sess *session.Session, info *models.ShippingInfo) (*models.Order, error) {
	args := m.Called(ctx, sess, info)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *CheckoutService) GetOrder(ctx context.Context, sess *session.Session, id string) (*models.Order, error) {
	args := m.Called(ctx, sess, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}
