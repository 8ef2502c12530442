package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/internal/models"
)

var (
	ErrSupplyNotFound   = errors.New("supply not found")
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrInvalidSupply    = errors.New("invalid supply")
	ErrInvalidMenuItem  = errors.New("invalid menu item")
	ErrUnknownSupply    = errors.New("requirement references an unknown supply")
)

// InventoryLedger is the part of the ledger used for supply and menu management
type InventoryLedger interface {
	Supplies() []models.Supply
	Supply(id int64) (models.Supply, bool)
	AddSupply(ctx context.Context, data models.Supply) models.Supply
	UpdateSupply(ctx context.Context, id int64, data models.Supply) bool
	DeleteSupply(ctx context.Context, id int64) bool

	MenuItems() []models.MenuItem
	MenuItem(id int64) (models.MenuItem, bool)
	AddMenuItem(ctx context.Context, data models.MenuItem) models.MenuItem
	UpdateMenuItem(ctx context.Context, id int64, data models.MenuItem) bool
	DeleteMenuItem(ctx context.Context, id int64) bool

	AvailableMenuItems() []models.MenuItem
	CanFulfill(item models.MenuItem, quantity int) bool
	MaxServings(item models.MenuItem) int
}

// Availability reports whether a quantity of a menu item can be made now
type Availability struct {
	MenuItemID  int64 `json:"menuItemId"`
	Quantity    int   `json:"quantity"`
	Available   bool  `json:"available"`
	MaxServings int   `json:"maxServings"`
}

// InventoryService handles supply and menu item management
type InventoryService struct {
	ledger InventoryLedger
}

// NewInventoryService creates a new inventory service
func NewInventoryService(ledger InventoryLedger) *InventoryService {
	return &InventoryService{
		ledger: ledger,
	}
}

// ListSupplies returns all supplies
func (s *InventoryService) ListSupplies(ctx context.Context) []models.Supply {
	return s.ledger.Supplies()
}

// GetSupply returns a supply by id
func (s *InventoryService) GetSupply(ctx context.Context, id int64) (*models.Supply, error) {
	supply, ok := s.ledger.Supply(id)
	if !ok {
		return nil, ErrSupplyNotFound
	}
	return &supply, nil
}

// CreateSupply validates and stores a new supply
func (s *InventoryService) CreateSupply(ctx context.Context, data models.Supply) (*models.Supply, error) {
	data, err := validateSupply(data)
	if err != nil {
		return nil, err
	}

	supply := s.ledger.AddSupply(ctx, data)
	return &supply, nil
}

// UpdateSupply validates and replaces an existing supply
func (s *InventoryService) UpdateSupply(ctx context.Context, id int64, data models.Supply) (*models.Supply, error) {
	data, err := validateSupply(data)
	if err != nil {
		return nil, err
	}

	if !s.ledger.UpdateSupply(ctx, id, data) {
		return nil, ErrSupplyNotFound
	}
	data.ID = id
	return &data, nil
}

// DeleteSupply removes a supply. Menu items referencing it are left untouched.
func (s *InventoryService) DeleteSupply(ctx context.Context, id int64) error {
	if !s.ledger.DeleteSupply(ctx, id) {
		return ErrSupplyNotFound
	}
	return nil
}

// ListMenuItems returns all menu items, or only the ones that can be made
// at least once when availableOnly is set
func (s *InventoryService) ListMenuItems(ctx context.Context, availableOnly bool) []models.MenuItem {
	if availableOnly {
		return s.ledger.AvailableMenuItems()
	}
	return s.ledger.MenuItems()
}

// GetMenuItem returns a menu item by id
func (s *InventoryService) GetMenuItem(ctx context.Context, id int64) (*models.MenuItem, error) {
	item, ok := s.ledger.MenuItem(id)
	if !ok {
		return nil, ErrMenuItemNotFound
	}
	return &item, nil
}

// CreateMenuItem validates and stores a new menu item
func (s *InventoryService) CreateMenuItem(ctx context.Context, data models.MenuItem) (*models.MenuItem, error) {
	data, err := s.validateMenuItem(data)
	if err != nil {
		return nil, err
	}

	item := s.ledger.AddMenuItem(ctx, data)
	return &item, nil
}

// UpdateMenuItem validates and replaces an existing menu item
func (s *InventoryService) UpdateMenuItem(ctx context.Context, id int64, data models.MenuItem) (*models.MenuItem, error) {
	data, err := s.validateMenuItem(data)
	if err != nil {
		return nil, err
	}

	if !s.ledger.UpdateMenuItem(ctx, id, data) {
		return nil, ErrMenuItemNotFound
	}
	return s.GetMenuItem(ctx, id)
}

// DeleteMenuItem removes a menu item. Past sales keep their snapshot.
func (s *InventoryService) DeleteMenuItem(ctx context.Context, id int64) error {
	if !s.ledger.DeleteMenuItem(ctx, id) {
		return ErrMenuItemNotFound
	}
	return nil
}

// CheckAvailability reports whether quantity units of a menu item can be made
func (s *InventoryService) CheckAvailability(ctx context.Context, id int64, quantity int) (*Availability, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	item, ok := s.ledger.MenuItem(id)
	if !ok {
		return nil, ErrMenuItemNotFound
	}

	return &Availability{
		MenuItemID:  id,
		Quantity:    quantity,
		Available:   s.ledger.CanFulfill(item, quantity),
		MaxServings: s.ledger.MaxServings(item),
	}, nil
}

func validateSupply(data models.Supply) (models.Supply, error) {
	data.Name = strings.TrimSpace(data.Name)
	data.Unit = strings.TrimSpace(data.Unit)
	data.Category = strings.TrimSpace(data.Category)

	if data.Name == "" {
		return data, fmt.Errorf("%w: name is required", ErrInvalidSupply)
	}
	if !isFinite(data.Stock) || data.Stock < 0 {
		return data, fmt.Errorf("%w: stock must be a non-negative number", ErrInvalidSupply)
	}
	return data, nil
}

func (s *InventoryService) validateMenuItem(data models.MenuItem) (models.MenuItem, error) {
	data.Name = strings.TrimSpace(data.Name)
	data.Category = strings.TrimSpace(data.Category)

	if data.Name == "" {
		return data, fmt.Errorf("%w: name is required", ErrInvalidMenuItem)
	}
	if !isFinite(data.Price) || data.Price < 0 {
		return data, fmt.Errorf("%w: price must be a non-negative number", ErrInvalidMenuItem)
	}
	data.Price = models.RoundMoney(data.Price)

	seen := make(map[int64]bool, len(data.SupplyRequirements))
	for _, req := range data.SupplyRequirements {
		if !isFinite(req.QuantityPerOrder) || req.QuantityPerOrder <= 0 {
			return data, fmt.Errorf("%w: quantity per order must be positive", ErrInvalidMenuItem)
		}
		if seen[req.SupplyID] {
			return data, fmt.Errorf("%w: supply %d is listed twice", ErrInvalidMenuItem, req.SupplyID)
		}
		seen[req.SupplyID] = true

		if _, ok := s.ledger.Supply(req.SupplyID); !ok {
			return data, fmt.Errorf("%w: %d", ErrUnknownSupply, req.SupplyID)
		}
	}
	return data, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
