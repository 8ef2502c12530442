package ledger

import (
	"cmp"
	"slices"

	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// Unlimited is returned by MaxServings for menu items without requirements
const Unlimited = -1

// Shortfall describes a supply whose stock cannot cover the demand of a cart
type Shortfall struct {
	SupplyID   int64   `json:"supplyId"`
	SupplyName string  `json:"supplyName,omitempty"`
	Required   float64 `json:"required"`
	Available  float64 `json:"available"`
}

// CanFulfill reports whether every requirement of item is covered by current
// stock for the given quantity. A requirement on a missing supply is never covered.
func (l *Ledger) CanFulfill(item models.MenuItem, quantity int) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.canFulfill(item, quantity)
}

func (l *Ledger) canFulfill(item models.MenuItem, quantity int) bool {
	for _, req := range item.SupplyRequirements {
		i := l.supplyIndex(req.SupplyID)
		if i < 0 {
			return false
		}
		if decimal.NewFromFloat(l.supplies[i].Stock).LessThan(demand(req.QuantityPerOrder, quantity)) {
			return false
		}
	}
	return true
}

// AvailableMenuItems returns the menu items that can be made at least once
func (l *Ledger) AvailableMenuItems() []models.MenuItem {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.MenuItem, 0, len(l.menuItems))
	for _, m := range l.menuItems {
		if l.canFulfill(m, 1) {
			out = append(out, m.Clone())
		}
	}
	return out
}

// MaxServings returns the largest quantity of item that current stock covers,
// or Unlimited when the item has no requirements.
func (l *Ledger) MaxServings(item models.MenuItem) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(item.SupplyRequirements) == 0 {
		return Unlimited
	}

	servings := -1
	for _, req := range item.SupplyRequirements {
		i := l.supplyIndex(req.SupplyID)
		if i < 0 {
			return 0
		}

		perOrder := decimal.NewFromFloat(req.QuantityPerOrder)
		if !perOrder.IsPositive() {
			continue
		}

		n := int(decimal.NewFromFloat(l.supplies[i].Stock).Div(perOrder).Floor().IntPart())
		if servings < 0 || n < servings {
			servings = n
		}
	}

	if servings < 0 {
		return Unlimited
	}
	return servings
}

// Shortfalls aggregates the supply demand of all lines and returns every
// supply whose stock cannot cover it, ordered by supply id. Lines whose menu
// item no longer exists contribute nothing.
func (l *Ledger) Shortfalls(lines []models.CartLine) []Shortfall {
	l.mu.RLock()
	defer l.mu.RUnlock()

	required := make(map[int64]decimal.Decimal)
	for _, line := range lines {
		i := l.menuItemIndex(line.ProductID)
		if i < 0 {
			continue
		}
		for _, req := range l.menuItems[i].SupplyRequirements {
			required[req.SupplyID] = required[req.SupplyID].Add(demand(req.QuantityPerOrder, line.Quantity))
		}
	}

	var out []Shortfall
	for supplyID, need := range required {
		i := l.supplyIndex(supplyID)
		if i >= 0 && decimal.NewFromFloat(l.supplies[i].Stock).GreaterThanOrEqual(need) {
			continue
		}

		sf := Shortfall{SupplyID: supplyID, Required: need.InexactFloat64()}
		if i >= 0 {
			sf.SupplyName = l.supplies[i].Name
			sf.Available = l.supplies[i].Stock
		}
		out = append(out, sf)
	}

	slices.SortFunc(out, func(a, b Shortfall) int {
		return cmp.Compare(a.SupplyID, b.SupplyID)
	})
	return out
}

func demand(perOrder float64, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(perOrder).Mul(decimal.NewFromInt(int64(quantity)))
}
