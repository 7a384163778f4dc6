package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
)

// Shipping bodies are only decoded here; field rules live in the checkout
// validator so the response carries per-field messages.
type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// ValidateShipping godoc
//	@Summary		Validate shipping details
//	@Description	Sanitizes and validates the shipping form, returning a message per invalid field.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			shipping	body		models.ShippingInfo					true	"Shipping details"
//	@Success		200			{object}	models.ValidateShippingResponse		"Validation result"
//	@Failure		400			{object}	response.ErrorResponse				"Malformed body"
//	@Router			/checkout/validate [post]
func (h *CheckoutHandler) ValidateShipping() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var info models.ShippingInfo
		if err := utils.DecodeJSONBody(r, &info); err != nil {
			logger.Warn("Invalid shipping body", slog.String("error", err.Error()))
			response.Error(w, errors.BadRequestError("Invalid request body").WithDetail(err.Error()))
			return
		}

		result, err := h.checkoutService.Validate(r.Context(), &info)
		if err != nil {
			logger.Error("Failed to validate shipping", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, result)
	}
}

// PlaceOrder godoc
//	@Summary		Place an order
//	@Description	Validates the shipping details and places an order from the session cart, which is then cleared.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string					false	"Shopper session ID"
//	@Param			shipping		body		models.ShippingInfo		true	"Shipping details"
//	@Success		201				{object}	models.Order			"Placed order"
//	@Failure		400				{object}	response.ErrorResponse	"Malformed body or empty cart"
//	@Failure		422				{object}	response.ErrorResponse	"Invalid shipping fields"
//	@Failure		500				{object}	response.ErrorResponse	"Internal server error"
//	@Router			/checkout [post]
func (h *CheckoutHandler) PlaceOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		var info models.ShippingInfo
		if err := utils.DecodeJSONBody(r, &info); err != nil {
			logger.Warn("Invalid shipping body", slog.String("error", err.Error()))
			response.Error(w, errors.BadRequestError("Invalid request body").WithDetail(err.Error()))
			return
		}

		order, err := h.checkoutService.PlaceOrder(r.Context(), sess, &info)
		if err != nil {
			logger.Warn("Order not placed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Order placed successfully",
			slog.String("orderId", order.ID),
			slog.Float64("total", order.Total))
		response.Success(w, http.StatusCreated, order)
	}
}
