package models

type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

func (i CartItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

type CartSummary struct {
	Items        []CartItem `json:"items"`
	Count        int        `json:"count"`
	Subtotal     float64    `json:"subtotal"`
	ShippingCost float64    `json:"shipping_cost"`
	Total        float64    `json:"total"`
	Revision     uint64     `json:"revision"`
}

type AddItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
}

// Quantity is a pointer so an explicit 0 (remove) passes the required check.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}
