package models

type WishlistSummary struct {
	Items    []Product `json:"items"`
	Count    int       `json:"count"`
	Revision uint64    `json:"revision"`
}

type WishlistToggleResponse struct {
	InWishlist bool             `json:"in_wishlist"`
	Wishlist   *WishlistSummary `json:"wishlist"`
}

type WishlistMembershipResponse struct {
	ProductID  int64 `json:"product_id"`
	InWishlist bool  `json:"in_wishlist"`
}
