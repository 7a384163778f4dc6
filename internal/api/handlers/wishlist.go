package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type WishlistHandler struct {
	wishlistService service.WishlistService
	validator       *validator.Validate
}

func NewWishlistHandler(wishlistService service.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		wishlistService: wishlistService,
		validator:       validator.New(),
	}
}

// GetWishlist godoc
//	@Summary		Get the wishlist
//	@Tags			Wishlist
//	@Produce		json
//	@Param			X-Session-ID	header		string					false	"Shopper session ID"
//	@Success		200				{object}	models.WishlistSummary	"Wishlist"
//	@Router			/wishlist [get]
func (h *WishlistHandler) GetWishlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		wishlist, err := h.wishlistService.GetWishlist(r.Context(), sess)
		if err != nil {
			logger.Error("Failed to get wishlist", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, wishlist)
	}
}

// Contains godoc
//	@Summary		Check wishlist membership
//	@Tags			Wishlist
//	@Produce		json
//	@Param			X-Session-ID	header		string								false	"Shopper session ID"
//	@Param			id				path		int									true	"Product ID"
//	@Success		200				{object}	models.WishlistMembershipResponse	"Membership"
//	@Failure		400				{object}	response.ErrorResponse				"Invalid product ID"
//	@Router			/wishlist/items/{id} [get]
func (h *WishlistHandler) Contains() http.HandlerFunc {
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

		membership, err := h.wishlistService.Contains(r.Context(), sess, id)
		if err != nil {
			logger.Error("Failed to check wishlist", slog.Int64("productId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, membership)
	}
}

// AddItem godoc
//	@Summary		Add a product to the wishlist
//	@Description	Adding a product that is already present has no effect.
//	@Tags			Wishlist
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string					false	"Shopper session ID"
//	@Param			item			body		models.AddItemRequest	true	"Product to add"
//	@Success		200				{object}	models.WishlistSummary	"Updated wishlist"
//	@Failure		400				{object}	response.ErrorResponse	"Validation error"
//	@Failure		404				{object}	response.ErrorResponse	"Product not found"
//	@Router			/wishlist/items [post]
func (h *WishlistHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add to wishlist input")
			return
		}

		wishlist, err := h.wishlistService.AddItem(r.Context(), sess, req.ProductID)
		if err != nil {
			logger.Warn("Failed to add item to wishlist",
				slog.Int64("productId", req.ProductID),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, wishlist)
	}
}

// ToggleItem godoc
//	@Summary		Toggle wishlist membership
//	@Tags			Wishlist
//	@Produce		json
//	@Param			X-Session-ID	header		string							false	"Shopper session ID"
//	@Param			id				path		int								true	"Product ID"
//	@Success		200				{object}	models.WishlistToggleResponse	"New membership and wishlist"
//	@Failure		400				{object}	response.ErrorResponse			"Invalid product ID"
//	@Failure		404				{object}	response.ErrorResponse			"Product not found"
//	@Router			/wishlist/items/{id}/toggle [post]
func (h *WishlistHandler) ToggleItem() http.HandlerFunc {
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

		resp, err := h.wishlistService.ToggleItem(r.Context(), sess, id)
		if err != nil {
			logger.Warn("Failed to toggle wishlist item", slog.Int64("productId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Wishlist toggled", slog.Int64("productId", id), slog.Bool("inWishlist", resp.InWishlist))
		response.Success(w, http.StatusOK, resp)
	}
}

// RemoveItem godoc
//	@Summary		Remove a product from the wishlist
//	@Tags			Wishlist
//	@Produce		json
//	@Param			X-Session-ID	header		string					false	"Shopper session ID"
//	@Param			id				path		int						true	"Product ID"
//	@Success		200				{object}	models.WishlistSummary	"Updated wishlist"
//	@Failure		400				{object}	response.ErrorResponse	"Invalid product ID"
//	@Router			/wishlist/items/{id} [delete]
func (h *WishlistHandler) RemoveItem() http.HandlerFunc {
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

		wishlist, err := h.wishlistService.RemoveItem(r.Context(), sess, id)
		if err != nil {
			logger.Error("Failed to remove wishlist item", slog.Int64("productId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, wishlist)
	}
}
