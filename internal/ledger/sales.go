package ledger

import (
	"context"
	"strings"

	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/internal/repository"
	"github.com/shopspring/decimal"
)

// Sales returns a snapshot of all sales, most recent first
func (l *Ledger) Sales() []models.Sale {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.Sale, len(l.sales))
	for i, s := range l.sales {
		out[i] = s.Clone()
	}
	return out
}

// Sale looks up a sale by id
func (l *Ledger) Sale(id int64) (models.Sale, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if i := l.saleIndex(id); i >= 0 {
		return l.sales[i].Clone(), true
	}
	return models.Sale{}, false
}

// RecordSale deducts the supplies consumed by lines and stores a new sale.
//
// Stock is not re-validated here: callers gate the sale with CanFulfill or
// Shortfalls first. Deduction is clamped at zero, so a caller that skips the
// check oversells without driving stock negative. An empty cart or blank
// customer name is rejected before any state changes.
func (l *Ledger) RecordSale(ctx context.Context, customerName string, lines []models.CartLine) (models.Sale, error) {
	customerName = strings.TrimSpace(customerName)
	if len(lines) == 0 {
		return models.Sale{}, ErrEmptyCart
	}
	if customerName == "" {
		return models.Sale{}, ErrBlankCustomer
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	deducted := false
	for _, line := range lines {
		mi := l.menuItemIndex(line.ProductID)
		if mi < 0 {
			continue
		}
		for _, req := range l.menuItems[mi].SupplyRequirements {
			si := l.supplyIndex(req.SupplyID)
			if si < 0 {
				continue
			}
			l.supplies[si].Stock = deduct(l.supplies[si].Stock, req.QuantityPerOrder, line.Quantity)
			deducted = true
		}
	}

	items := make([]models.CartLine, len(lines))
	copy(items, lines)

	sale := models.Sale{
		ID:           l.nextID(),
		Date:         l.now().UTC().Round(0),
		CustomerName: customerName,
		Items:        items,
		Total:        models.CartTotal(items),
	}

	l.sales = append([]models.Sale{sale}, l.sales...)
	l.customers.add(customerName)

	if deducted {
		l.persist(ctx, repository.KeySupplies, l.supplies)
	}
	l.persist(ctx, repository.KeySales, l.sales)

	return sale.Clone(), nil
}

// DeleteSale removes a sale record. Supplies are not restocked: deleting
// corrects the log and is not an inverse transaction.
func (l *Ledger) DeleteSale(ctx context.Context, id int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.saleIndex(id)
	if i < 0 {
		return false
	}

	l.sales = append(l.sales[:i:i], l.sales[i+1:]...)
	l.persist(ctx, repository.KeySales, l.sales)
	return true
}

// SalesByCustomer returns the sales of a customer, most recent first.
// Names are matched case-insensitively after trimming.
func (l *Ledger) SalesByCustomer(name string) []models.Sale {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := []models.Sale{}
	if !l.customers.mayContain(name) {
		return out
	}

	key := normalizeCustomer(name)
	for _, s := range l.sales {
		if normalizeCustomer(s.CustomerName) == key {
			out = append(out, s.Clone())
		}
	}
	return out
}

func (l *Ledger) saleIndex(id int64) int {
	for i := range l.sales {
		if l.sales[i].ID == id {
			return i
		}
	}
	return -1
}

// deduct returns max(0, stock - perOrder*quantity) computed in decimal
func deduct(stock, perOrder float64, quantity int) float64 {
	remaining := decimal.NewFromFloat(stock).Sub(demand(perOrder, quantity))
	if remaining.IsNegative() {
		return 0
	}
	return remaining.InexactFloat64()
}
