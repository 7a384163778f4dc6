package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/catalog"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Run("Success - Embedded Catalog Loads", func(t *testing.T) {
		c, err := catalog.Default()

		require.NoError(t, err)
		assert.Equal(t, 8, c.Len())

		p, ok := c.Lookup(1)
		require.True(t, ok)
		assert.Equal(t, "Apple", p.Brand)
		assert.NotEmpty(t, p.Images)
		assert.NotEmpty(t, p.Highlights)
	})

	t.Run("Success - Every Product Is Priced At Or Below Original", func(t *testing.T) {
		c, err := catalog.Default()
		require.NoError(t, err)

		for _, p := range c.Products() {
			assert.LessOrEqual(t, p.Price, p.OriginalPrice, "product %d", p.ID)
			assert.GreaterOrEqual(t, p.Rating, 0.0)
			assert.LessOrEqual(t, p.Rating, 5.0)
		}
	})
}

func TestNew(t *testing.T) {
	t.Run("Success - Preserves Order And Indexes By ID", func(t *testing.T) {
		c, err := catalog.New([]models.Product{{ID: 9, Name: "b"}, {ID: 3, Name: "a"}})

		require.NoError(t, err)
		products := c.Products()
		assert.Equal(t, int64(9), products[0].ID)
		assert.Equal(t, int64(3), products[1].ID)

		p, ok := c.Lookup(3)
		assert.True(t, ok)
		assert.Equal(t, "a", p.Name)
	})

	t.Run("Success - Lookup Of Unknown ID", func(t *testing.T) {
		c, err := catalog.New([]models.Product{{ID: 1}})
		require.NoError(t, err)

		_, ok := c.Lookup(2)

		assert.False(t, ok)
	})

	t.Run("Failure - Duplicate ID", func(t *testing.T) {
		_, err := catalog.New([]models.Product{{ID: 1}, {ID: 1}})

		assert.ErrorContains(t, err, "duplicate product id 1")
	})

	t.Run("Failure - Invalid ID", func(t *testing.T) {
		_, err := catalog.New([]models.Product{{ID: 0, Name: "x"}})

		assert.ErrorContains(t, err, "invalid id")
	})

	t.Run("Failure - Empty", func(t *testing.T) {
		_, err := catalog.New(nil)

		assert.ErrorIs(t, err, catalog.ErrEmptyCatalog)
	})

	t.Run("Success - Catalog Does Not Alias Input", func(t *testing.T) {
		input := []models.Product{{ID: 1, Images: []string{"a.jpg"}}}
		c, err := catalog.New(input)
		require.NoError(t, err)

		input[0].Images[0] = "mutated.jpg"

		p, _ := c.Lookup(1)
		assert.Equal(t, "a.jpg", p.Images[0])
	})
}

func TestLoad(t *testing.T) {
	t.Run("Success - Reads YAML File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		content := `
products:
  - id: 42
    name: "Desk Lamp"
    brand: "Philips"
    price: 999
    original_price: 1299
    rating: 4.3
    reviews: 120
    images: ["lamp.jpg"]
    description: "LED lamp"
    highlights: ["5W", "Warm white"]
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		c, err := catalog.Load(path)

		require.NoError(t, err)
		p, ok := c.Lookup(42)
		require.True(t, ok)
		assert.Equal(t, 999.0, p.Price)
		assert.Equal(t, []string{"5W", "Warm white"}, p.Highlights)
	})

	t.Run("Failure - Missing File", func(t *testing.T) {
		_, err := catalog.Load(filepath.Join(t.TempDir(), "nope.yaml"))

		assert.ErrorContains(t, err, "failed to read catalog file")
	})

	t.Run("Failure - Unknown Field", func(t *testing.T) {
		_, err := catalog.Parse([]byte("products:\n  - id: 1\n    stock: 4\n"))

		assert.ErrorContains(t, err, "failed to decode catalog")
	})
}
