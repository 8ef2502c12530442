package ledger

import (
	"strings"

	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/internal/models"
	"github.com/bits-and-blooms/bloom/v3"
)

const (
	expectedCustomers  = 10000
	customerFalseRatio = 0.01
)

// customerIndex answers "has this customer ever bought anything" without
// scanning the sales log. Deleted sales are never removed from the filter,
// so a positive answer is always confirmed against the log.
type customerIndex struct {
	filter *bloom.BloomFilter
}

func newCustomerIndex(sales []models.Sale) *customerIndex {
	idx := &customerIndex{
		filter: bloom.NewWithEstimates(expectedCustomers, customerFalseRatio),
	}
	for _, s := range sales {
		idx.add(s.CustomerName)
	}
	return idx
}

func (c *customerIndex) add(name string) {
	c.filter.AddString(normalizeCustomer(name))
}

func (c *customerIndex) mayContain(name string) bool {
	return c.filter.TestString(normalizeCustomer(name))
}

func normalizeCustomer(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
