package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/session"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validator:   validator.New(),
	}
}

// GetCart godoc
//	@Summary		Get the cart
//	@Description	Returns the session cart with item count, subtotal, shipping cost and total.
//	@Tags			Cart
//	@Produce		json
//	@Param			X-Session-ID	header		string					false	"Shopper session ID"
//	@Success		200				{object}	models.CartSummary		"Cart"
//	@Failure		500				{object}	response.ErrorResponse	"Internal server error"
//	@Router			/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), sess)
		if err != nil {
			logger.Error("Failed to get cart", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// AddItem godoc
//	@Summary		Add a product to the cart
//	@Description	Adds one unit of the product. Adding a product already in the cart increments its quantity.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string					false	"Shopper session ID"
//	@Param			item			body		models.AddItemRequest	true	"Product to add"
//	@Success		200				{object}	models.CartSummary		"Updated cart"
//	@Failure		400				{object}	response.ErrorResponse	"Validation error"
//	@Failure		404				{object}	response.ErrorResponse	"Product not found"
//	@Router			/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add to cart input")
			return
		}

		cart, err := h.cartService.AddItem(r.Context(), sess, req.ProductID)
		if err != nil {
			logger.Warn("Failed to add item to cart",
				slog.Int64("productId", req.ProductID),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart", slog.Int64("productId", req.ProductID), slog.Int("count", cart.Count))
		response.Success(w, http.StatusOK, cart)
	}
}

// UpdateQuantity godoc
//	@Summary		Set a cart line quantity
//	@Description	Sets the quantity of a product in the cart. A quantity of zero or less removes the line.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string							false	"Shopper session ID"
//	@Param			id				path		int								true	"Product ID"
//	@Param			quantity		body		models.UpdateQuantityRequest	true	"New quantity"
//	@Success		200				{object}	models.CartSummary				"Updated cart"
//	@Failure		400				{object}	response.ErrorResponse			"Validation error"
//	@Router			/cart/items/{id} [put]
func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, errors.BadRequestError("Invalid product ID").WithDetail(err.Error()))
			return
		}

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update quantity input")
			return
		}

		cart, err := h.cartService.UpdateQuantity(r.Context(), sess, id, *req.Quantity)
		if err != nil {
			logger.Error("Failed to update quantity", slog.Int64("productId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// IncrementItem godoc
//	@Summary		Increment a cart line
//	@Description	Adds one to the quantity of a product already in the cart. Absent products are ignored.
//	@Tags			Cart
//	@Produce		json
//	@Param			X-Session-ID	header		string					false	"Shopper session ID"
//	@Param			id				path		int						true	"Product ID"
//	@Success		200				{object}	models.CartSummary		"Updated cart"
//	@Failure		400				{object}	response.ErrorResponse	"Invalid product ID"
//	@Router			/cart/items/{id}/increment [post]
func (h *CartHandler) IncrementItem() http.HandlerFunc {
	return h.byProduct("increment", h.cartService.IncrementItem)
}

// DecrementItem godoc
//	@Summary		Decrement a cart line
//	@Description	Subtracts one from the quantity of a product in the cart, removing the line at zero.
//	@Tags			Cart
//	@Produce		json
//	@Param			X-Session-ID	header		string					false	"Shopper session ID"
//	@Param			id				path		int						true	"Product ID"
//	@Success		200				{object}	models.CartSummary		"Updated cart"
//	@Failure		400				{object}	response.ErrorResponse	"Invalid product ID"
//	@Router			/cart/items/{id}/decrement [post]
func (h *CartHandler) DecrementItem() http.HandlerFunc {
	return h.byProduct("decrement", h.cartService.DecrementItem)
}

// RemoveItem godoc
//	@Summary		Remove a cart line
//	@Tags			Cart
//	@Produce		json
//	@Param			X-Session-ID	header		string					false	"Shopper session ID"
//	@Param			id				path		int						true	"Product ID"
//	@Success		200				{object}	models.CartSummary		"Updated cart"
//	@Failure		400				{object}	response.ErrorResponse	"Invalid product ID"
//	@Router			/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return h.byProduct("remove", h.cartService.RemoveItem)
}

// ClearCart godoc
//	@Summary		Empty the cart
//	@Tags			Cart
//	@Produce		json
//	@Param			X-Session-ID	header		string					false	"Shopper session ID"
//	@Success		200				{object}	models.CartSummary		"Empty cart"
//	@Router			/cart [delete]
func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.ClearCart(r.Context(), sess)
		if err != nil {
			logger.Error("Failed to clear cart", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Cart cleared")
		response.Success(w, http.StatusOK, cart)
	}
}

type cartOp func(ctx context.Context, sess *session.Session, productID int64) (*models.CartSummary, error)

// byProduct serves the cart operations that only take a product id from the path.
func (h *CartHandler) byProduct(name string, op cartOp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("op", name), slog.String("error", err.Error()))
			response.Error(w, errors.BadRequestError("Invalid product ID").WithDetail(err.Error()))
			return
		}

		cart, err := op(r.Context(), sess, id)
		if err != nil {
			logger.Error("Cart operation failed",
				slog.String("op", name),
				slog.Int64("productId", id),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}
