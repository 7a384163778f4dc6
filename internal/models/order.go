package models

import "time"

type ShippingInfo struct {
	Name       string `json:"name" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required,len=6,number"`
	Country    string `json:"country" validate:"required"`
}

type PriceBreakdown struct {
	Subtotal     float64 `json:"subtotal"`
	ShippingCost float64 `json:"shipping_cost"`
	Total        float64 `json:"total"`
}

type Order struct {
	ID           string       `json:"id"`
	Items        []CartItem   `json:"items"`
	ShippingInfo ShippingInfo `json:"shipping_info"`
	Subtotal     float64      `json:"subtotal"`
	ShippingCost float64      `json:"shipping_cost"`
	Total        float64      `json:"total"`
	PlacedAt     time.Time    `json:"placed_at"`
}

type ValidateShippingResponse struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
}
