package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/cache"
	"github.com/aaravmahajanofficial/storefront/internal/checkout"
	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/session"
	"github.com/aaravmahajanofficial/storefront/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validShipping() *models.ShippingInfo {
	return &models.ShippingInfo{
		Name:       "Asha Rao",
		Address:    "12 MG Road",
		City:       "Bengaluru",
		PostalCode: "560001",
		Country:    "India",
	}
}

func TestCheckoutValidate(t *testing.T) {
	svc := service.NewCheckoutService(checkout.NewValidator(), cache.NewMemoryCache(cacheConfig()), cacheConfig())

	t.Run("Success - Valid", func(t *testing.T) {
		resp, err := svc.Validate(context.Background(), validShipping())

		require.NoError(t, err)
		assert.True(t, resp.Valid)
		assert.Empty(t, resp.Errors)
	})

	t.Run("Failure - Blank Name And Short Postal Code", func(t *testing.T) {
		info := validShipping()
		info.Name = "   "
		info.PostalCode = "56000"

		resp, err := svc.Validate(context.Background(), info)

		require.NoError(t, err)
		assert.False(t, resp.Valid)
		assert.Equal(t, map[string]string{
			"name":        "Name is required",
			"postal_code": "Invalid Postal Code",
		}, resp.Errors)
	})
}

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Places Order And Clears Cart", func(t *testing.T) {
		// Arrange
		c := defaultCatalog()
		carts := service.NewCartService(c)
		svc := service.NewCheckoutService(checkout.NewValidator(), cache.NewMemoryCache(cacheConfig()), cacheConfig())
		sess := testutils.NewTestSession()
		_, _ = carts.AddItem(ctx, sess, 5)
		_, _ = carts.AddItem(ctx, sess, 3)

		// Act
		order, err := svc.PlaceOrder(ctx, sess, validShipping())

		// Assert
		require.NoError(t, err)
		assert.Regexp(t, `^OD\d+$`, order.ID)
		assert.Len(t, order.Items, 2)
		assert.Equal(t, 5498.0, order.Subtotal)
		assert.Equal(t, 99.0, order.ShippingCost)
		assert.Equal(t, 5597.0, order.Total)

		summary, err := carts.GetCart(ctx, sess)
		require.NoError(t, err)
		assert.Empty(t, summary.Items)

		sess.Do(func(st *session.State) {
			assert.Equal(t, checkout.StatePlaced, st.Checkout.State())
		})

		stored, err := svc.GetOrder(ctx, sess, order.ID)
		require.NoError(t, err)
		assert.Equal(t, order.ID, stored.ID)
		assert.Equal(t, order.Total, stored.Total)
		assert.Len(t, stored.Items, 2)
	})

	t.Run("Failure - Empty Cart", func(t *testing.T) {
		svc := service.NewCheckoutService(checkout.NewValidator(), cache.NewMemoryCache(cacheConfig()), cacheConfig())

		order, err := svc.PlaceOrder(ctx, testutils.NewTestSession(), validShipping())

		assert.Nil(t, order)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
		assert.ErrorIs(t, err, checkout.ErrEmptyCart)
	})

	t.Run("Failure - Invalid Shipping Keeps Cart", func(t *testing.T) {
		carts := service.NewCartService(defaultCatalog())
		svc := service.NewCheckoutService(checkout.NewValidator(), cache.NewMemoryCache(cacheConfig()), cacheConfig())
		sess := testutils.NewTestSession()
		_, _ = carts.AddItem(ctx, sess, 1)
		info := validShipping()
		info.City = ""

		order, err := svc.PlaceOrder(ctx, sess, info)

		assert.Nil(t, order)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeUnprocessable, appErr.Code)
		assert.Equal(t, "City is required", appErr.Fields["city"])

		summary, _ := carts.GetCart(ctx, sess)
		assert.Len(t, summary.Items, 1)
	})

	t.Run("Success - Cache Failure Still Returns Order", func(t *testing.T) {
		carts := service.NewCartService(defaultCatalog())
		mc := new(mockCache)
		mc.On("Set", mock.Anything, mock.AnythingOfType("string"), mock.Anything, cacheConfig().OrderTTL).
			Return(errors.New("redis down")).Once()
		svc := service.NewCheckoutService(checkout.NewValidator(), mc, cacheConfig())
		sess := testutils.NewTestSession()
		_, _ = carts.AddItem(ctx, sess, 2)

		order, err := svc.PlaceOrder(ctx, sess, validShipping())

		require.NoError(t, err)
		assert.Equal(t, 59999.0, order.Total)
		mc.AssertExpectations(t)
	})
}

func TestGetOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Failure - Not Found", func(t *testing.T) {
		svc := service.NewCheckoutService(checkout.NewValidator(), cache.NewMemoryCache(cacheConfig()), cacheConfig())

		order, err := svc.GetOrder(ctx, testutils.NewTestSession(), "OD1")

		assert.Nil(t, order)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})

	t.Run("Failure - Other Session Cannot Read Order", func(t *testing.T) {
		// Arrange
		carts := service.NewCartService(defaultCatalog())
		svc := service.NewCheckoutService(checkout.NewValidator(), cache.NewMemoryCache(cacheConfig()), cacheConfig())
		owner := testutils.NewTestSession()
		other := testutils.NewTestSession()
		_, _ = carts.AddItem(ctx, owner, 1)
		placed, err := svc.PlaceOrder(ctx, owner, validShipping())
		require.NoError(t, err)

		// Act
		order, err := svc.GetOrder(ctx, other, placed.ID)

		// Assert
		assert.Nil(t, order)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)

		own, err := svc.GetOrder(ctx, owner, placed.ID)
		require.NoError(t, err)
		assert.Equal(t, placed.ID, own.ID)
	})

	t.Run("Failure - Cache Error", func(t *testing.T) {
		mc := new(mockCache)
		sess := testutils.NewTestSession()
		mc.On("Get", mock.Anything, "order:"+sess.ID+":OD1", mock.Anything).Return(false, errors.New("redis down")).Once()
		svc := service.NewCheckoutService(checkout.NewValidator(), mc, cacheConfig())

		order, err := svc.GetOrder(ctx, sess, "OD1")

		assert.Nil(t, order)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeCacheError, appErr.Code)
		mc.AssertExpectations(t)
	})
}
