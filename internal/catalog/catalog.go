// Package catalog holds the static, read-only product list a storefront sells
// from. A Catalog is built once at startup and is safe for concurrent reads.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed products.yaml
var defaultProducts []byte

var ErrEmptyCatalog = errors.New("catalog has no products")

type Catalog struct {
	products []models.Product
	byID     map[int64]int
}

// New validates products (positive, unique ids) and freezes them in order.
func New(products []models.Product) (*Catalog, error) {
	if len(products) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		products: make([]models.Product, 0, len(products)),
		byID:     make(map[int64]int, len(products)),
	}

	for _, p := range products {
		if p.ID <= 0 {
			return nil, fmt.Errorf("product %q has invalid id %d", p.Name, p.ID)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p.Clone())
	}

	return c, nil
}

func Default() (*Catalog, error) {
	return Parse(defaultProducts)
}

func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	return Parse(data)
}

// Parse decodes a YAML document of the form `products: [...]`.
func Parse(data []byte) (*Catalog, error) {
	var doc struct {
		Products []models.Product `yaml:"products"`
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	return New(doc.Products)
}

// Products returns the catalog in its original order. Callers must not modify
// the Images or Highlights slices of the returned products.
func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Lookup(id int64) (models.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Product{}, false
	}
	return c.products[i], true
}

func (c *Catalog) Len() int {
	return len(c.products)
}
