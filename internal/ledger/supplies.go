package ledger

import (
	"context"

	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/internal/repository"
)

// Supplies returns a snapshot of all supplies in insertion order
func (l *Ledger) Supplies() []models.Supply {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.Supply, len(l.supplies))
	copy(out, l.supplies)
	return out
}

// Supply looks up a supply by id
func (l *Ledger) Supply(id int64) (models.Supply, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if i := l.supplyIndex(id); i >= 0 {
		return l.supplies[i], true
	}
	return models.Supply{}, false
}

// AddSupply appends a supply under a fresh id
func (l *Ledger) AddSupply(ctx context.Context, data models.Supply) models.Supply {
	l.mu.Lock()
	defer l.mu.Unlock()

	data.ID = l.nextID()
	l.supplies = append(l.supplies, data)
	l.persist(ctx, repository.KeySupplies, l.supplies)
	return data
}

// UpdateSupply replaces the fields of the supply with the given id.
// It reports false and changes nothing when the id is unknown.
func (l *Ledger) UpdateSupply(ctx context.Context, id int64, data models.Supply) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.supplyIndex(id)
	if i < 0 {
		return false
	}

	data.ID = id
	l.supplies[i] = data
	l.persist(ctx, repository.KeySupplies, l.supplies)
	return true
}

// DeleteSupply removes a supply. Menu items referencing it keep the dangling
// requirement and become unfulfillable.
func (l *Ledger) DeleteSupply(ctx context.Context, id int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.supplyIndex(id)
	if i < 0 {
		return false
	}

	l.supplies = append(l.supplies[:i:i], l.supplies[i+1:]...)
	l.persist(ctx, repository.KeySupplies, l.supplies)
	return true
}

func (l *Ledger) supplyIndex(id int64) int {
	for i := range l.supplies {
		if l.supplies[i].ID == id {
			return i
		}
	}
	return -1
}
