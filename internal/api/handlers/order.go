package handlers

import (
	"log/slog"
	"net/http"
	"regexp"

	"github.com/aaravmahajanofficial/storefront/internal/errors"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
)

var orderIDPattern = regexp.MustCompile(`^OD\d+$`)

type OrderHandler struct {
	checkoutService service.CheckoutService
}

func NewOrderHandler(checkoutService service.CheckoutService) *OrderHandler {
	return &OrderHandler{checkoutService: checkoutService}
}

// GetOrder godoc
//	@Summary		Get an order confirmation
//	@Description	Looks up a recently placed order by its ID. Only the session that placed the order can read it.
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path		string					true	"Order ID"	example(OD1727784000000)
//	@Success		200	{object}	models.Order			"Order"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid order ID format"
//	@Failure		404	{object}	response.ErrorResponse	"Order not found or expired"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Router			/orders/{id} [get]
func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		id := r.PathValue("id")
		if !orderIDPattern.MatchString(id) {
			logger.Warn("Invalid order id", slog.String("orderId", id))
			response.Error(w, errors.BadRequestError("Invalid order ID format"))
			return
		}

		logger = logger.With(slog.String("orderId", id))

		order, err := h.checkoutService.GetOrder(r.Context(), sess, id)
		if err != nil {
			logger.Warn("Failed to get order", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, order)
	}
}
