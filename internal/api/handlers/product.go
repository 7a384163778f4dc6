package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
)

type ProductHandler struct {
	catalogService service.CatalogService
}

func NewProductHandler(catalogService service.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

// ListProducts godoc
//	@Summary		List products
//	@Description	Filters the catalog by a case-insensitive query over name and brand, then orders it by the sort key.
//	@Tags			Products
//	@Produce		json
//	@Param			q		query		string							false	"Search query"
//	@Param			sort	query		string							false	"Sort key"	Enums(relevance, price-asc, price-desc, rating-desc, name-asc)
//	@Success		200		{object}	models.ProductListResponse		"Matching products"
//	@Failure		400		{object}	response.ErrorResponse			"Unknown sort key"
//	@Router			/products [get]
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		query := r.URL.Query().Get("q")
		sort := r.URL.Query().Get("sort")

		resp, err := h.catalogService.ListProducts(r.Context(), query, sort)
		if err != nil {
			logger.Warn("Failed to list products",
				slog.String("sort", sort),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Products listed", slog.Int("total", resp.Total))
		response.Success(w, http.StatusOK, resp)
	}
}

// GetProduct godoc
//	@Summary		Get a product
//	@Description	Returns a catalog product with its derived discount percentage.
//	@Tags			Products
//	@Produce		json
//	@Param			id	path		int						true	"Product ID"
//	@Success		200	{object}	models.ProductView		"Product"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid product ID"
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Router			/products/{id} [get]
func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, errors.BadRequestError("Invalid product ID").WithDetail(err.Error()))
			return
		}

		product, err := h.catalogService.GetProduct(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to get product", slog.Int64("productId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}
