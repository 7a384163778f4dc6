package service

import (
	"context"
	"log/slog"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/catalog"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/pricing"
	"github.com/aaravmahajanofficial/storefront/internal/search"
	"github.com/aaravmahajanofficial/storefront/internal/tracing"
	"go.opentelemetry.io/otel/attribute"
)

type CatalogService interface {
	ListProducts(ctx context.Context, query, sort string) (*models.ProductListResponse, error)
	GetProduct(ctx context.Context, id int64) (*models.ProductView, error)
}

type catalogService struct {
	catalog *catalog.Catalog
}

func NewCatalogService(c *catalog.Catalog) CatalogService {
	return &catalogService{catalog: c}
}

func (s *catalogService) ListProducts(ctx context.Context, query, sort string) (*models.ProductListResponse, error) {
	_, span := tracing.Tracer().Start(ctx, "CatalogService.ListProducts")
	defer span.End()

	key, err := search.ParseSortKey(sort)
	if err != nil {
		return nil, errors.BadRequestError("Invalid sort key").WithDetail(err.Error())
	}

	matched := search.DeriveView(s.catalog.Products(), query, key)

	views := make([]models.ProductView, 0, len(matched))
	for _, p := range matched {
		views = append(views, pricing.View(p))
	}

	span.SetAttributes(
		attribute.String("catalog.sort", string(key)),
		attribute.Int("catalog.results", len(views)),
	)

	middleware.LoggerFromContext(ctx).Debug("Catalog view derived",
		slog.String("sort", string(key)),
		slog.Int("results", len(views)))

	return &models.ProductListResponse{
		Products: views,
		Query:    query,
		Sort:     string(key),
		Total:    len(views),
	}, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id int64) (*models.ProductView, error) {
	_, span := tracing.Tracer().Start(ctx, "CatalogService.GetProduct")
	defer span.End()
	span.SetAttributes(attribute.Int64("product.id", id))

	p, ok := s.catalog.Lookup(id)
	if !ok {
		return nil, errors.NotFoundError("Product not found")
	}

	view := pricing.View(p)
	return &view, nil
}
