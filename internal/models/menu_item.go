package models

// SupplyRequirement is the quantity of a supply consumed by one order of a menu item
type SupplyRequirement struct {
	SupplyID         int64   `json:"supplyId" yaml:"supplyId"`
	QuantityPerOrder float64 `json:"quantityPerOrder" yaml:"quantityPerOrder"`
}

// MenuItem represents a sellable product composed from supplies.
// A menu item without requirements can always be made.
type MenuItem struct {
	ID                 int64               `json:"id" yaml:"id"`
	Name               string              `json:"name" yaml:"name"`
	Price              float64             `json:"price" yaml:"price"`
	Category           string              `json:"category" yaml:"category"`
	SupplyRequirements []SupplyRequirement `json:"supplyRequirements" yaml:"supplyRequirements"`
}

// Clone returns a copy that does not share the requirements slice
func (m MenuItem) Clone() MenuItem {
	reqs := make([]SupplyRequirement, len(m.SupplyRequirements))
	copy(reqs, m.SupplyRequirements)
	m.SupplyRequirements = reqs
	return m
}
