package ledger

import (
	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// ComputeStats derives dashboard aggregates from the current collections.
// TotalValue is the sum of raw supply stock; TodaySales counts sales on the
// current calendar date in the ledger's location.
func (l *Ledger) ComputeStats() models.Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()

	stats := models.Stats{
		TotalProducts: len(l.menuItems),
		TotalSales:    len(l.sales),
	}

	stock := decimal.Zero
	for _, s := range l.supplies {
		if s.IsLowStock() {
			stats.LowStockSupplies++
		}
		stock = stock.Add(decimal.NewFromFloat(s.Stock))
	}
	stats.TotalValue = stock.InexactFloat64()

	totals := make([]float64, len(l.sales))
	ty, tm, td := l.now().In(l.loc).Date()
	for i, s := range l.sales {
		totals[i] = s.Total
		if y, m, d := s.Date.In(l.loc).Date(); y == ty && m == tm && d == td {
			stats.TodaySales++
		}
	}
	stats.TotalRevenue = models.SumMoney(totals...)

	return stats
}
