package models

import "time"

// CartLine is a pending line item during order composition.
// Sales keep a snapshot of their cart lines so later menu changes do not alter history.
type CartLine struct {
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

// NewCartLine builds a line for the given menu item and quantity
func NewCartLine(item MenuItem, quantity int) CartLine {
	return CartLine{
		ProductID:   item.ID,
		ProductName: item.Name,
		Price:       item.Price,
		Quantity:    quantity,
		Subtotal:    LineSubtotal(item.Price, quantity),
	}
}

// Sale is a completed transaction. Total is fixed at creation time.
type Sale struct {
	ID           int64      `json:"id"`
	Date         time.Time  `json:"date"`
	CustomerName string     `json:"customerName"`
	Items        []CartLine `json:"items"`
	Total        float64    `json:"total"`
}

// Clone returns a copy that does not share the items slice
func (s Sale) Clone() Sale {
	items := make([]CartLine, len(s.Items))
	copy(items, s.Items)
	s.Items = items
	return s
}
