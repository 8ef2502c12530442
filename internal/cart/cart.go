// Package cart composes an order before it is recorded as a sale.
// A cart is session state: it is never persisted and is dropped on
// checkout or when abandoned.
package cart

import (
	"errors"

	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/internal/models"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrLineNotFound    = errors.New("product is not in the cart")
)

// Cart holds one line per product in the order they were first added
type Cart struct {
	lines []models.CartLine
}

// New creates an empty cart
func New() *Cart {
	return &Cart{}
}

// Add puts quantity units of item in the cart, merging with an existing line
func (c *Cart) Add(item models.MenuItem, quantity int) (models.CartLine, error) {
	if quantity <= 0 {
		return models.CartLine{}, ErrInvalidQuantity
	}

	if i := c.index(item.ID); i >= 0 {
		c.lines[i].Quantity += quantity
		c.lines[i].Subtotal = models.LineSubtotal(c.lines[i].Price, c.lines[i].Quantity)
		return c.lines[i], nil
	}

	line := models.NewCartLine(item, quantity)
	c.lines = append(c.lines, line)
	return line, nil
}

// SetQuantity changes the quantity of a line. Zero or less removes it.
func (c *Cart) SetQuantity(productID int64, quantity int) error {
	i := c.index(productID)
	if i < 0 {
		return ErrLineNotFound
	}

	if quantity <= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return nil
	}

	c.lines[i].Quantity = quantity
	c.lines[i].Subtotal = models.LineSubtotal(c.lines[i].Price, quantity)
	return nil
}

// Remove drops the line for productID
func (c *Cart) Remove(productID int64) error {
	return c.SetQuantity(productID, 0)
}

// Line returns the line for productID
func (c *Cart) Line(productID int64) (models.CartLine, bool) {
	if i := c.index(productID); i >= 0 {
		return c.lines[i], true
	}
	return models.CartLine{}, false
}

// Lines returns a copy of the cart lines
func (c *Cart) Lines() []models.CartLine {
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total is the sum of line subtotals
func (c *Cart) Total() float64 {
	return models.CartTotal(c.lines)
}

// Len returns the number of lines
func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) index(productID int64) int {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}
