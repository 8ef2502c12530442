package models

// LowStockThreshold is the stock level below which a supply is reported as low.
const LowStockThreshold = 10

// Supply is a raw material tracked in inventory.
// Stock may be fractional (kilograms, litres) and is never negative.
type Supply struct {
	ID       int64   `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Stock    float64 `json:"stock" yaml:"stock"`
	Unit     string  `json:"unit" yaml:"unit"`
	Category string  `json:"category" yaml:"category"`
}

// StockStatus classifies a stock level for display
type StockStatus string

const (
	StockOut StockStatus = "out_of_stock"
	StockLow StockStatus = "low_stock"
	StockIn  StockStatus = "in_stock"
)

// StatusFor returns the stock status for the given stock level
func StatusFor(stock float64) StockStatus {
	switch {
	case stock <= 0:
		return StockOut
	case stock < LowStockThreshold:
		return StockLow
	default:
		return StockIn
	}
}

// IsLowStock reports whether the supply is below the low stock threshold
func (s Supply) IsLowStock() bool {
	return s.Stock < LowStockThreshold
}
