package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/internal/cart"
	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/internal/ledger"
	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/internal/models"
	"github.com/google/uuid"
)

var (
	ErrCartNotFound      = errors.New("cart not found")
	ErrCartItemNotFound  = errors.New("product is not in the cart")
	ErrInvalidProduct    = errors.New("invalid product")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrEmptyOrder        = errors.New("order must contain at least one item")
	ErrBlankCustomer     = errors.New("customer name is required")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrSaleNotFound      = errors.New("sale not found")
)

// InsufficientStockError lists the supplies that cannot cover a cart.
// It matches ErrInsufficientStock with errors.Is.
type InsufficientStockError struct {
	ProductID  int64
	Shortfalls []ledger.Shortfall
}

func (e *InsufficientStockError) Error() string {
	if e.ProductID != 0 {
		return fmt.Sprintf("insufficient stock for product %d", e.ProductID)
	}
	return fmt.Sprintf("insufficient stock for %d supplies", len(e.Shortfalls))
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// SalesLedger is the part of the ledger used to take and review orders
type SalesLedger interface {
	MenuItem(id int64) (models.MenuItem, bool)
	CanFulfill(item models.MenuItem, quantity int) bool
	Shortfalls(lines []models.CartLine) []ledger.Shortfall
	RecordSale(ctx context.Context, customerName string, lines []models.CartLine) (models.Sale, error)

	Sales() []models.Sale
	Sale(id int64) (models.Sale, bool)
	SalesByCustomer(name string) []models.Sale
	DeleteSale(ctx context.Context, id int64) bool
	ComputeStats() models.Stats
}

// SalesService handles cart sessions, checkout and the sales history.
// Checkout holds the service lock across the availability check and the
// deduction so two carts cannot both pass the check on the same stock.
type SalesService struct {
	ledger SalesLedger

	mu    sync.Mutex
	carts map[uuid.UUID]*cart.Cart
}

// NewSalesService creates a new sales service
func NewSalesService(ledger SalesLedger) *SalesService {
	return &SalesService{
		ledger: ledger,
		carts:  make(map[uuid.UUID]*cart.Cart),
	}
}

// OpenCart starts a new empty cart session
func (s *SalesService) OpenCart(ctx context.Context) *models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	c := cart.New()
	s.carts[id] = c
	return cartView(id, c)
}

// GetCart returns the current contents of a cart
func (s *SalesService) GetCart(ctx context.Context, cartID uuid.UUID) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[cartID]
	if !ok {
		return nil, ErrCartNotFound
	}
	return cartView(cartID, c), nil
}

// AbandonCart discards a cart without recording anything
func (s *SalesService) AbandonCart(ctx context.Context, cartID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.carts[cartID]; !ok {
		return ErrCartNotFound
	}
	delete(s.carts, cartID)
	return nil
}

// AddToCart adds quantity units of a menu item, merging with an existing
// line. The merged quantity must be makeable from current stock.
func (s *SalesService) AddToCart(ctx context.Context, cartID uuid.UUID, req models.CartItemRequest) (*models.Cart, error) {
	if req.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[cartID]
	if !ok {
		return nil, ErrCartNotFound
	}

	item, ok := s.ledger.MenuItem(req.ProductID)
	if !ok {
		return nil, ErrInvalidProduct
	}

	quantity := req.Quantity
	if line, ok := c.Line(item.ID); ok {
		quantity += line.Quantity
	}
	if !s.ledger.CanFulfill(item, quantity) {
		return nil, &InsufficientStockError{ProductID: item.ID}
	}

	if _, err := c.Add(item, req.Quantity); err != nil {
		return nil, ErrInvalidQuantity
	}
	return cartView(cartID, c), nil
}

// UpdateCartQuantity sets the quantity of a cart line; zero or less removes it
func (s *SalesService) UpdateCartQuantity(ctx context.Context, cartID uuid.UUID, productID int64, quantity int) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[cartID]
	if !ok {
		return nil, ErrCartNotFound
	}
	if _, ok := c.Line(productID); !ok {
		return nil, ErrCartItemNotFound
	}

	if quantity > 0 {
		item, ok := s.ledger.MenuItem(productID)
		if !ok {
			return nil, ErrInvalidProduct
		}
		if !s.ledger.CanFulfill(item, quantity) {
			return nil, &InsufficientStockError{ProductID: productID}
		}
	}

	if err := c.SetQuantity(productID, quantity); err != nil {
		return nil, ErrCartItemNotFound
	}
	return cartView(cartID, c), nil
}

// RemoveFromCart drops a line from a cart
func (s *SalesService) RemoveFromCart(ctx context.Context, cartID uuid.UUID, productID int64) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[cartID]
	if !ok {
		return nil, ErrCartNotFound
	}
	if err := c.Remove(productID); err != nil {
		return nil, ErrCartItemNotFound
	}
	return cartView(cartID, c), nil
}

// Checkout records the cart as a sale for customerName and closes the cart.
// Every line must still refer to an existing menu item and the whole cart
// must be covered by current stock; otherwise nothing changes.
func (s *SalesService) Checkout(ctx context.Context, cartID uuid.UUID, customerName string) (*models.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[cartID]
	if !ok {
		return nil, ErrCartNotFound
	}
	if c.Len() == 0 {
		return nil, ErrEmptyOrder
	}
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return nil, ErrBlankCustomer
	}

	lines := c.Lines()
	for _, line := range lines {
		item, ok := s.ledger.MenuItem(line.ProductID)
		if !ok {
			return nil, ErrInvalidProduct
		}
		if !s.ledger.CanFulfill(item, line.Quantity) {
			return nil, &InsufficientStockError{ProductID: line.ProductID}
		}
	}
	if shortfalls := s.ledger.Shortfalls(lines); len(shortfalls) > 0 {
		return nil, &InsufficientStockError{Shortfalls: shortfalls}
	}

	sale, err := s.ledger.RecordSale(ctx, customerName, lines)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrEmptyCart):
			return nil, ErrEmptyOrder
		case errors.Is(err, ledger.ErrBlankCustomer):
			return nil, ErrBlankCustomer
		default:
			return nil, fmt.Errorf("failed to record sale: %w", err)
		}
	}

	delete(s.carts, cartID)
	return &sale, nil
}

// ListSales returns the sales history, most recent first, optionally
// restricted to one customer
func (s *SalesService) ListSales(ctx context.Context, customer string) []models.Sale {
	if strings.TrimSpace(customer) != "" {
		return s.ledger.SalesByCustomer(customer)
	}
	return s.ledger.Sales()
}

// GetSale returns a sale by id
func (s *SalesService) GetSale(ctx context.Context, id int64) (*models.Sale, error) {
	sale, ok := s.ledger.Sale(id)
	if !ok {
		return nil, ErrSaleNotFound
	}
	return &sale, nil
}

// DeleteSale removes a sale from the history without restocking
func (s *SalesService) DeleteSale(ctx context.Context, id int64) error {
	if !s.ledger.DeleteSale(ctx, id) {
		return ErrSaleNotFound
	}
	return nil
}

// Stats returns the dashboard statistics
func (s *SalesService) Stats(ctx context.Context) models.Stats {
	return s.ledger.ComputeStats()
}

func cartView(id uuid.UUID, c *cart.Cart) *models.Cart {
	return &models.Cart{
		ID:    id,
		Items: c.Lines(),
		Total: c.Total(),
	}
}
