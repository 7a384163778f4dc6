package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/lib/pq"
)

// ProductRepository reads the catalog seed table. The storefront never writes
// to it; the rows are loaded once at startup.
type ProductRepository interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

func (r *productRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	dbCtx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		SELECT id, name, brand, price, original_price, rating, reviews, images, description, highlights
		FROM products
		ORDER BY position, id
	`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []models.Product

	for rows.Next() {
		var p models.Product

		err := rows.Scan(&p.ID, &p.Name, &p.Brand, &p.Price, &p.OriginalPrice, &p.Rating, &p.Reviews,
			pq.Array(&p.Images), &p.Description, pq.Array(&p.Highlights))
		if err != nil {
			return nil, fmt.Errorf("scanning product row: %w", err)
		}

		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, nil
}
