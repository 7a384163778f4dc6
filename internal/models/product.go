package models

type Product struct {
	ID            int64    `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Brand         string   `json:"brand" yaml:"brand"`
	Price         float64  `json:"price" yaml:"price"`
	OriginalPrice float64  `json:"original_price" yaml:"original_price"`
	Rating        float64  `json:"rating" yaml:"rating"`
	Reviews       int      `json:"reviews" yaml:"reviews"`
	Images        []string `json:"images" yaml:"images"`
	Description   string   `json:"description" yaml:"description"`
	Highlights    []string `json:"highlights" yaml:"highlights"`
}

// Clone returns a copy that shares no slices with p.
func (p Product) Clone() Product {
	c := p
	if p.Images != nil {
		c.Images = append([]string(nil), p.Images...)
	}
	if p.Highlights != nil {
		c.Highlights = append([]string(nil), p.Highlights...)
	}
	return c
}

// ProductView is a catalog entry as rendered in listings and detail pages.
type ProductView struct {
	Product
	DiscountPercent int `json:"discount_percent"`
}

type ProductListResponse struct {
	Products []ProductView `json:"products"`
	Query    string        `json:"query"`
	Sort     string        `json:"sort"`
	Total    int           `json:"total"`
}
