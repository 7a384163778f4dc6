package repository_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	listSQL = regexp.QuoteMeta(`SELECT id, name, brand, price, original_price, rating, reviews, images, description, highlights FROM products ORDER BY position, id`)
	columns = []string{"id", "name", "brand", "price", "original_price", "rating", "reviews", "images", "description", "highlights"}
)

func TestNewWithDB(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repos := repository.NewWithDB(db)

	assert.NotNil(t, repos.Product)
	assert.Same(t, db, repos.DB)
}

func TestListProducts(t *testing.T) {
	t.Run("Success - Rows In Catalog Order", func(t *testing.T) {
		// Arrange
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(listSQL).WillReturnRows(sqlmock.NewRows(columns).
			AddRow(2, "Kindle", "Amazon", 13999.0, 14999.0, 4.5, 15604, "{kindle-1.jpg,kindle-2.jpg}", "E-reader", `{"300 ppi","Waterproof, IPX8"}`).
			AddRow(1, "Pixel 9", "Google", 64999.0, 79999.0, 4.4, 2100, "{}", "Phone", "{}"))

		repo := repository.NewProductRepo(db)

		// Act
		products, err := repo.ListProducts(t.Context())

		// Assert
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, models.Product{
			ID:            2,
			Name:          "Kindle",
			Brand:         "Amazon",
			Price:         13999,
			OriginalPrice: 14999,
			Rating:        4.5,
			Reviews:       15604,
			Images:        []string{"kindle-1.jpg", "kindle-2.jpg"},
			Description:   "E-reader",
			Highlights:    []string{"300 ppi", "Waterproof, IPX8"},
		}, products[0])
		assert.Equal(t, int64(1), products[1].ID)
		assert.Empty(t, products[1].Images)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Query Error", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		dbErr := errors.New("connection refused")
		mock.ExpectQuery(listSQL).WillReturnError(dbErr)

		products, err := repository.NewProductRepo(db).ListProducts(t.Context())

		assert.Nil(t, products)
		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "querying products")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Scan Error", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(listSQL).WillReturnRows(sqlmock.NewRows(columns).
			AddRow("not-a-number", "x", "y", 1.0, 1.0, 1.0, 1, "{}", "", "{}"))

		_, err = repository.NewProductRepo(db).ListProducts(t.Context())

		assert.ErrorContains(t, err, "scanning product row")
	})

	t.Run("Failure - Row Iteration Error", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
		require.NoError(t, err)
		defer db.Close()

		rowErr := errors.New("connection reset")
		mock.ExpectQuery(listSQL).WillReturnRows(sqlmock.NewRows(columns).
			AddRow(1, "x", "y", 1.0, 1.0, 1.0, 1, "{}", "", "{}").
			RowError(0, rowErr))

		_, err = repository.NewProductRepo(db).ListProducts(t.Context())

		assert.ErrorIs(t, err, rowErr)
		assert.ErrorContains(t, err, "iterating product rows")
	})
}
