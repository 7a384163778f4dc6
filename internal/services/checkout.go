package service

import (
	"context"
	goErrors "errors"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/cache"
	"github.com/aaravmahajanofficial/storefront/internal/checkout"
	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/metrics"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/session"
	"github.com/aaravmahajanofficial/storefront/internal/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type CheckoutService interface {
	Validate(ctx context.Context, info *models.ShippingInfo) (*models.ValidateShippingResponse, error)
	PlaceOrder(ctx context.Context, sess *session.Session, info *models.ShippingInfo) (*models.Order, error)
	GetOrder(ctx context.Context, sess *session.Session, id string) (*models.Order, error)
}

type checkoutService struct {
	validator *checkout.Validator
	cache     cache.Cache
	orderTTL  time.Duration
}

func NewCheckoutService(v *checkout.Validator, c cache.Cache, cfg *config.CacheConfig) CheckoutService {
	return &checkoutService{validator: v, cache: c, orderTTL: cfg.OrderTTL}
}

func (s *checkoutService) Validate(ctx context.Context, info *models.ShippingInfo) (*models.ValidateShippingResponse, error) {
	_, span := tracing.Tracer().Start(ctx, "CheckoutService.Validate")
	defer span.End()

	errs := s.validator.Validate(*info)
	if len(errs) > 0 {
		return &models.ValidateShippingResponse{Valid: false, Errors: errs}, nil
	}

	return &models.ValidateShippingResponse{Valid: true}, nil
}

func (s *checkoutService) PlaceOrder(ctx context.Context, sess *session.Session, info *models.ShippingInfo) (*models.Order, error) {
	ctx, span := tracing.Tracer().Start(ctx, "CheckoutService.PlaceOrder")
	defer span.End()
	span.SetAttributes(attribute.String("session.id", sess.ID))

	logger := middleware.LoggerFromContext(ctx)

	var (
		result checkout.Result
		err    error
	)
	sess.Do(func(st *session.State) {
		result, err = st.Checkout.Submit(st.Cart.Items(), *info)
		if err == nil && result.Order != nil {
			st.Cart.Clear()
		}
	})

	if goErrors.Is(err, checkout.ErrEmptyCart) {
		return nil, errors.BadRequestError("Cannot place an order with an empty cart").WithError(err)
	}
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, errors.InternalError("Failed to place order").WithError(err)
	}

	if len(result.Errors) > 0 {
		metrics.CheckoutRejected(result.Errors)
		return nil, errors.UnprocessableError("Shipping details are invalid").WithFields(result.Errors)
	}

	order := result.Order
	span.SetAttributes(
		attribute.String("order.id", order.ID),
		attribute.Float64("order.total", order.Total),
	)
	metrics.OrderPlaced(order.Total)

	if err := s.cache.Set(ctx, cache.OrderKey(sess.ID, order.ID), order, s.orderTTL); err != nil {
		logger.Error("Failed to cache order confirmation",
			slog.String("orderId", order.ID),
			slog.String("error", err.Error()))
	}

	return order, nil
}

// GetOrder returns a confirmation only to the session that placed the order.
// Any other session gets NotFound.
func (s *checkoutService) GetOrder(ctx context.Context, sess *session.Session, id string) (*models.Order, error) {
	ctx, span := tracing.Tracer().Start(ctx, "CheckoutService.GetOrder")
	defer span.End()
	span.SetAttributes(attribute.String("order.id", id))

	var order models.Order
	found, err := s.cache.Get(ctx, cache.OrderKey(sess.ID, id), &order)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, errors.CacheError("Failed to read order").WithError(err)
	}
	if !found {
		return nil, errors.NotFoundError("Order not found")
	}

	return &order, nil
}
