package models

// Stats holds dashboard aggregates derived from the ledger collections
type Stats struct {
	TotalProducts    int     `json:"totalProducts"`
	LowStockSupplies int     `json:"lowStockSupplies"`
	TotalValue       float64 `json:"totalValue"`
	TotalSales       int     `json:"totalSales"`
	TotalRevenue     float64 `json:"totalRevenue"`
	TodaySales       int     `json:"todaySales"`
}
