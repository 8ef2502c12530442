package models

import "github.com/google/uuid"

// Cart is the API view of an open cart session
type Cart struct {
	ID    uuid.UUID  `json:"id"`
	Items []CartLine `json:"items"`
	Total float64    `json:"total"`
}

// CartItemRequest adds a product to a cart
type CartItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// CartQuantityRequest sets the quantity of a cart line
type CartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CheckoutRequest completes a cart as a sale
type CheckoutRequest struct {
	CustomerName string `json:"customerName"`
}
