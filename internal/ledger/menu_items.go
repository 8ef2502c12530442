package ledger

import (
	"context"

	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/storefront-ledger/internal/repository"
)

// MenuItems returns a snapshot of all menu items in insertion order
func (l *Ledger) MenuItems() []models.MenuItem {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.MenuItem, len(l.menuItems))
	for i, m := range l.menuItems {
		out[i] = m.Clone()
	}
	return out
}

// MenuItem looks up a menu item by id
func (l *Ledger) MenuItem(id int64) (models.MenuItem, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if i := l.menuItemIndex(id); i >= 0 {
		return l.menuItems[i].Clone(), true
	}
	return models.MenuItem{}, false
}

// AddMenuItem appends a menu item under a fresh id.
// Missing requirements default to an empty list.
func (l *Ledger) AddMenuItem(ctx context.Context, data models.MenuItem) models.MenuItem {
	l.mu.Lock()
	defer l.mu.Unlock()

	item := normalizeMenuItem(data)
	item.ID = l.nextID()
	l.menuItems = append(l.menuItems, item)
	l.persist(ctx, repository.KeyMenuItems, l.menuItems)
	return item.Clone()
}

// UpdateMenuItem replaces the fields of the menu item with the given id.
// It reports false and changes nothing when the id is unknown.
func (l *Ledger) UpdateMenuItem(ctx context.Context, id int64, data models.MenuItem) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.menuItemIndex(id)
	if i < 0 {
		return false
	}

	item := normalizeMenuItem(data)
	item.ID = id
	l.menuItems[i] = item
	l.persist(ctx, repository.KeyMenuItems, l.menuItems)
	return true
}

// DeleteMenuItem removes a menu item. Recorded sales keep their snapshot.
func (l *Ledger) DeleteMenuItem(ctx context.Context, id int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.menuItemIndex(id)
	if i < 0 {
		return false
	}

	l.menuItems = append(l.menuItems[:i:i], l.menuItems[i+1:]...)
	l.persist(ctx, repository.KeyMenuItems, l.menuItems)
	return true
}

func (l *Ledger) menuItemIndex(id int64) int {
	for i := range l.menuItems {
		if l.menuItems[i].ID == id {
			return i
		}
	}
	return -1
}

func normalizeMenuItem(data models.MenuItem) models.MenuItem {
	item := data.Clone()
	if data.SupplyRequirements == nil {
		item.SupplyRequirements = []models.SupplyRequirement{}
	}
	return item
}
